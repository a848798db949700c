package storage_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/framemaker/reelsite/internal/storage"
)

func newTestStorage(t *testing.T, publicEndpoint string) *storage.Storage {
	t.Helper()
	s, err := storage.New(context.Background(), storage.Config{
		Endpoint:       "http://localhost:9000",
		PublicEndpoint: publicEndpoint,
		Bucket:         "reels",
		AccessKey:      "test",
		SecretKey:      "test",
	})
	if err != nil {
		t.Fatalf("expected no error creating storage client, got: %v", err)
	}
	return s
}

func TestGenerateDownloadURLUsesPublicEndpoint(t *testing.T) {
	s := newTestStorage(t, "https://cdn.example.com")

	url, err := s.GenerateDownloadURL(context.Background(), "videos/car.mp4", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(url, "https://cdn.example.com/reels/videos/car.mp4") {
		t.Errorf("expected presigned URL on public endpoint, got %s", url)
	}
	if !strings.Contains(url, "X-Amz-Signature=") {
		t.Errorf("expected signed URL, got %s", url)
	}
}

func TestGenerateDownloadURLFallsBackToEndpoint(t *testing.T) {
	s := newTestStorage(t, "")

	url, err := s.GenerateDownloadURL(context.Background(), "videos/reel.mp4", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(url, "http://localhost:9000/reels/videos/reel.mp4") {
		t.Errorf("expected presigned URL on endpoint, got %s", url)
	}
	if s.Bucket() != "reels" {
		t.Errorf("expected bucket reels, got %q", s.Bucket())
	}
}

func TestObjectSize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
		switch r.URL.Path {
		case "/reels/videos/car.mp4":
			w.Header().Set("Content-Length", "1234")
			w.Header().Set("Content-Type", "video/mp4")
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	s, err := storage.New(context.Background(), storage.Config{
		Endpoint:  srv.URL,
		Bucket:    "reels",
		AccessKey: "test",
		SecretKey: "test",
	})
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}

	size, exists, err := s.ObjectSize(context.Background(), "videos/car.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists || size != 1234 {
		t.Errorf("expected existing object of 1234 bytes, got exists=%v size=%d", exists, size)
	}

	_, exists, err = s.ObjectSize(context.Background(), "videos/missing.mp4")
	if err != nil {
		t.Fatalf("expected missing object to be reported without error, got %v", err)
	}
	if exists {
		t.Error("expected missing object")
	}
}

func TestGenerateDownloadURLNilStorage(t *testing.T) {
	var s *storage.Storage
	if _, err := s.GenerateDownloadURL(context.Background(), "k", time.Hour); err == nil {
		t.Error("expected error for nil storage")
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"reel.mp4", "video/mp4"},
		{"eye_hole_cg.MOV", "video/quicktime"},
		{"clip.webm", "video/webm"},
		{"notes", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := storage.ContentType(tt.path); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
