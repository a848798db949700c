package site

import (
	"context"
	"html/template"
	"net/http"
	"strconv"

	"github.com/framemaker/reelsite/internal/embed"
	"github.com/framemaker/reelsite/internal/httputil"
	"github.com/framemaker/reelsite/internal/portfolio"
	"github.com/go-chi/chi/v5"
)

type embedPageData struct {
	Title     string
	VideoURL  string
	Nonce     string
	PlayFunc  string
	PauseFunc string
}

// The player obeys the same command messages a YouTube iframe accepts, plus
// Vimeo-style {"method": ...} messages. Anything else is ignored.
var embedPageTemplate = template.Must(template.New("embed").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <style nonce="{{.Nonce}}">
        * { margin: 0; padding: 0; box-sizing: border-box; }
        html, body { width: 100%; height: 100%; overflow: hidden; background: #000; }
        video { width: 100%; height: 100%; object-fit: contain; }
    </style>
</head>
<body>
    <video id="player" playsinline webkit-playsinline controls controlsList="nodownload" preload="metadata" src="{{.VideoURL}}"></video>
    <script nonce="{{.Nonce}}">
        (function() {
            var v = document.getElementById('player');
            var playFunc = {{.PlayFunc}};
            var pauseFunc = {{.PauseFunc}};
            window.addEventListener('message', function(e) {
                var data = e.data;
                if (typeof data === 'string') {
                    try { data = JSON.parse(data); } catch (err) { return; }
                }
                if (!data || typeof data !== 'object') {
                    return;
                }
                var fn = data.event === 'command' ? data.func : data.method;
                if (fn === playFunc || fn === 'play') {
                    v.play().catch(function() {});
                } else if (fn === pauseFunc || fn === 'pause') {
                    v.pause();
                }
            });
        })();
    </script>
</body>
</html>`))

type notFoundPageData struct {
	Nonce string
}

var notFoundPageTemplate = template.Must(template.New("not-found").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Video not found</title>
    <style nonce="{{.Nonce}}">
        html, body { height: 100%; margin: 0; background: #111827; color: #d1d5db; }
        body { display: flex; align-items: center; justify-content: center; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; }
    </style>
</head>
<body>
    <p>Video not found</p>
</body>
</html>`))

func (s *Site) EmbedPage(w http.ResponseWriter, r *http.Request) {
	nonce := httputil.NonceFromContext(r.Context())

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		httputil.WriteHTML(w, http.StatusNotFound, notFoundPageTemplate, notFoundPageData{Nonce: nonce})
		return
	}
	project, ok := s.catalog.ByIndex(index)
	if !ok {
		httputil.WriteHTML(w, http.StatusNotFound, notFoundPageTemplate, notFoundPageData{Nonce: nonce})
		return
	}

	httputil.WriteHTML(w, http.StatusOK, embedPageTemplate, s.embedData(r.Context(), project, nonce))
}

func (s *Site) embedData(ctx context.Context, p portfolio.Project, nonce string) embedPageData {
	return embedPageData{
		Title:     p.Title,
		VideoURL:  s.resolver.Resolve(ctx, p.VideoURL),
		Nonce:     nonce,
		PlayFunc:  embed.FuncPlayVideo,
		PauseFunc: embed.FuncPauseVideo,
	}
}
