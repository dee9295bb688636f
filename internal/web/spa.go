package web

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

const indexFile = "index.html"

// SPA serves a prebuilt bundle from root. Requests that do not name an
// existing file get index.html so the client-side router can take over.
type SPA struct {
	root  fs.FS
	files http.Handler
}

func NewSPA(root fs.FS) *SPA {
	return &SPA{root: root, files: http.FileServerFS(root)}
}

func (s *SPA) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name != "" && s.isFile(name) {
		s.files.ServeHTTP(w, r)
		return
	}

	s.serveIndex(w, r)
}

func (s *SPA) isFile(name string) bool {
	info, err := fs.Stat(s.root, name)
	return err == nil && !info.IsDir()
}

func (s *SPA) serveIndex(w http.ResponseWriter, r *http.Request) {
	if _, err := fs.Stat(s.root, indexFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// index.html is revalidated on every load
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFileFS(w, r, s.root, indexFile)
}
