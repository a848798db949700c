// Package media turns the configured video locators into URLs a browser can
// load. Resolution never fails outward: on error the locator is used as is.
package media

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

type Resolver interface {
	Resolve(ctx context.Context, locator string) string
}

// IsRemote reports whether the locator is already an absolute URL.
func IsRemote(locator string) bool {
	return strings.HasPrefix(locator, "https://") || strings.HasPrefix(locator, "http://")
}

// ObjectKey maps a site-relative locator such as /videos/car.mp4 to its bucket key.
func ObjectKey(locator string) string {
	return strings.TrimPrefix(locator, "/")
}

// StaticResolver serves locators from the site itself, optionally under BaseURL.
type StaticResolver struct {
	BaseURL string
}

func (r StaticResolver) Resolve(_ context.Context, locator string) string {
	if locator == "" || IsRemote(locator) || r.BaseURL == "" {
		return locator
	}
	return strings.TrimSuffix(r.BaseURL, "/") + "/" + strings.TrimPrefix(locator, "/")
}

type Presigner interface {
	GenerateDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// StorageResolver presigns bucket URLs for site-relative locators.
type StorageResolver struct {
	presigner Presigner
	fallback  Resolver
	expiry    time.Duration
}

func NewStorageResolver(presigner Presigner, fallback Resolver, expiry time.Duration) *StorageResolver {
	if fallback == nil {
		fallback = StaticResolver{}
	}
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &StorageResolver{presigner: presigner, fallback: fallback, expiry: expiry}
}

func (r *StorageResolver) Resolve(ctx context.Context, locator string) string {
	if locator == "" || IsRemote(locator) {
		return locator
	}
	url, err := r.presigner.GenerateDownloadURL(ctx, ObjectKey(locator), r.expiry)
	if err != nil {
		slog.Warn("media: presign failed, serving locator directly", "locator", locator, "error", err)
		return r.fallback.Resolve(ctx, locator)
	}
	return url
}
