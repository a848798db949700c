package server

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/framemaker/reelsite/internal/storage"
)

// videoFileServer serves showreel files. Directory listings are never exposed.
type videoFileServer struct {
	fileServer http.Handler
	fileSystem fs.FS
}

func newVideoFileServer(fsys fs.FS) *videoFileServer {
	return &videoFileServer{
		fileServer: http.FileServer(http.FS(fsys)),
		fileSystem: fsys,
	}
}

func (s *videoFileServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")
	info, err := fs.Stat(s.fileSystem, path)
	if path == "" || err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", storage.ContentType(path))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	s.fileServer.ServeHTTP(w, r)
}
