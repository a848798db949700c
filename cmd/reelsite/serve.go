package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/framemaker/reelsite/internal/config"
	"github.com/framemaker/reelsite/internal/geoip"
	"github.com/framemaker/reelsite/internal/media"
	"github.com/framemaker/reelsite/internal/server"
	"github.com/framemaker/reelsite/internal/site"
	"github.com/framemaker/reelsite/internal/storage"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the portfolio web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
}

func serve(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resolver, err := newResolver(ctx, cfg)
	if err != nil {
		return err
	}

	portfolioSite, err := site.New(cfg.Site, resolver)
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	locator := geoip.New(cfg.GeoIPDB)
	defer locator.Close()

	srv := server.New(server.Config{
		Site:            portfolioSite,
		VideosFS:        videosFS(cfg.Server.VideosDir),
		BaseURL:         cfg.Server.BaseURL,
		StorageEndpoint: storageEndpoint(cfg.Storage),
		EmbedHosts:      cfg.Server.EmbedHosts,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		Locator:         locator,
		EnableDocs:      cfg.Server.EnableDocs,
	})
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("reelsite listening", "addr", httpServer.Addr, "projects", portfolioSite.Catalog().Len())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-shutdownCh:
	}
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	slog.Info("shutdown complete")
	return nil
}

// newResolver presigns locators from the bucket when storage is enabled and
// otherwise serves them relative to the base URL.
func newResolver(ctx context.Context, cfg *config.Config) (media.Resolver, error) {
	static := media.StaticResolver{BaseURL: cfg.Server.BaseURL}
	if !cfg.Storage.Enabled {
		return static, nil
	}

	store, err := newStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	slog.Info("storage bucket ready", "bucket", cfg.Storage.Bucket)
	return media.NewStorageResolver(store, static, time.Hour), nil
}

func newStorage(ctx context.Context, sc config.StorageConfig) (*storage.Storage, error) {
	store, err := storage.New(ctx, storage.Config{
		Endpoint:       sc.Endpoint,
		PublicEndpoint: sc.PublicEndpoint,
		Bucket:         sc.Bucket,
		AccessKey:      sc.AccessKey,
		SecretKey:      sc.SecretKey,
		Region:         sc.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage initialization failed: %w", err)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("storage bucket check failed: %w", err)
	}
	return store, nil
}

func storageEndpoint(sc config.StorageConfig) string {
	if !sc.Enabled {
		return ""
	}
	if sc.PublicEndpoint != "" {
		return sc.PublicEndpoint
	}
	return sc.Endpoint
}

func videosFS(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		slog.Warn("videos directory unavailable, local video serving disabled", "dir", dir)
		return nil
	}
	return os.DirFS(dir)
}
