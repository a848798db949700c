package server

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/framemaker/reelsite/internal/docs"
	"github.com/framemaker/reelsite/internal/httputil"
	"github.com/framemaker/reelsite/internal/ratelimit"
	"github.com/framemaker/reelsite/internal/site"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// CountryLocator maps a client IP to an ISO country code, or "" when unknown.
type CountryLocator interface {
	Country(ip string) string
}

type Config struct {
	Site            *site.Site
	VideosFS        fs.FS
	BaseURL         string
	StorageEndpoint string
	EmbedHosts      []string
	AllowedOrigins  []string
	Locator         CountryLocator
	EnableDocs      bool
}

type Server struct {
	router     chi.Router
	site       *site.Site
	videosFS   fs.FS
	cors       func(http.Handler) http.Handler
	apiLimiter *ratelimit.Limiter
	docs       *docs.Docs
}

func New(cfg Config) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(slogMiddleware(cfg.Locator))
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders(SecurityConfig{
		BaseURL:         cfg.BaseURL,
		StorageEndpoint: cfg.StorageEndpoint,
		EmbedHosts:      cfg.EmbedHosts,
	}))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s := &Server{
		router:   r,
		site:     cfg.Site,
		videosFS: cfg.VideosFS,
		cors: cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}),
		apiLimiter: ratelimit.NewLimiter(5, 20),
	}

	if cfg.EnableDocs {
		d, err := docs.New("/api/docs/openapi.yaml")
		if err != nil {
			slog.Error("api docs disabled", "error", err)
		} else {
			s.docs = d
		}
	}

	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close stops background work owned by the server.
func (s *Server) Close() {
	s.apiLimiter.Stop()
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)

	if s.site != nil {
		s.router.Route("/api", func(r chi.Router) {
			r.Use(s.cors)
			r.Use(s.apiLimiter.Middleware)
			r.NotFound(func(w http.ResponseWriter, r *http.Request) {
				httputil.WriteError(w, http.StatusNotFound, "not found")
			})
			r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
				httputil.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
			})
			r.Get("/projects", s.site.ListProjects)
			r.Get("/site", s.site.Info)
			if s.docs != nil {
				r.Route("/docs", s.docs.Mount)
			}
		})
		s.router.Get("/", s.site.Page)
		s.router.Get("/embed/{index}", s.site.EmbedPage)
	}

	if s.videosFS != nil {
		s.router.Handle("/videos/*", http.StripPrefix("/videos", newVideoFileServer(s.videosFS)))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
