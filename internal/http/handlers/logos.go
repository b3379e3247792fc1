package handlers

import (
	"io/fs"
	nethttp "net/http"
	"path"

	"github.com/go-chi/chi/v5"
)

// Logo serves a bundled team logo.
func (h *Handler) Logo(w nethttp.ResponseWriter, r *nethttp.Request) {
	name := chi.URLParam(r, "file")
	if h.logos == nil || name == "" || path.Base(name) != name {
		h.NotFound(w, r)
		return
	}
	if _, err := fs.Stat(h.logos, name); err != nil {
		h.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	nethttp.ServeFileFS(w, r, h.logos, name)
}
