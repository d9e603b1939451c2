package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetAvatar serves raw blob bytes by digest. Blobs are immutable, so the
// response can be cached forever.
func GetAvatar(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		digest := chi.URLParam(r, "digest")
		content, meta, err := h.service.Avatar(r.Context(), digest)
		if err != nil {
			http.Error(w, "", statusFor(err))
			return
		}
		w.Header().Add("Content-Type", meta.MimeType)
		w.Header().Add("Cache-Control", "public, max-age=31536000, immutable")
		w.Write(content)
	}
}
