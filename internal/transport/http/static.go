package http

import (
	"net/http"
	"os"
	"path/filepath"
)

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, filepath.Join(h.publicDir, "index.html"))
}

// static serves scanner UI assets for any GET path not claimed by the API.
// Cleaning the request path against a leading slash keeps lookups inside
// the public directory.
func (h *handler) static(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	h.serveFile(w, r, filepath.Join(h.publicDir, filepath.Clean("/"+r.URL.Path)))
}

func (h *handler) serveFile(w http.ResponseWriter, r *http.Request, path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	http.ServeFile(w, r, path)
}
