package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/namecard/internal/render"
	"github.com/sidereusnuntius/namecard/internal/service"
)

// ResolveHandle serves the public page for a claimed handle. Every
// unresolvable handle gets the same generic not-found page, so an unclaimed
// handle never leaks an empty profile.
func ResolveHandle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handle := chi.URLParam(r, "handle")

		entry, err := h.service.Resolve(r.Context(), handle)
		if err != nil {
			if !errors.Is(err, service.ErrNotFound) {
				log.Error().Err(err).Str("handle", handle).Msg("resolution failed")
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			w.Write(render.NotFound())
			return
		}

		page, err := render.Page(entry)
		if err != nil {
			http.Error(w, "", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}

// HandleHistory lists all published versions of a handle, newest first.
func HandleHistory(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handle := chi.URLParam(r, "handle")

		records, err := h.service.History(r.Context(), handle)
		if err != nil {
			http.Error(w, "", statusFor(err))
			return
		}

		type version struct {
			Version int64  `json:"version"`
			Title   string `json:"title"`
			Created int64  `json:"created"`
		}
		versions := make([]version, 0, len(records))
		for _, record := range records {
			versions = append(versions, version{
				Version: record.Version,
				Title:   record.Title,
				Created: record.Created,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(versions)
	}
}
