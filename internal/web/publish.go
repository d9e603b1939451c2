package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/namecard/internal/domain"
)

const MaxMemory = 64 * 1024

// Publish accepts the business card submission form: handle, profile
// fields, optional avatar, and the connected wallet from the session.
func Publish(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)

		err := r.ParseMultipartForm(MaxMemory)
		if err != nil {
			log.Error().
				Err(err).
				Msg("failed to read multipart form from request")
			http.Error(w, "failed to parse form body", http.StatusBadRequest)
			return
		}

		sub := domain.Submission{
			Handle:      r.Form.Get("handle"),
			Title:       r.Form.Get("title"),
			Description: r.Form.Get("description"),
			Email:       r.Form.Get("email"),
		}

		platforms := r.Form["platform"]
		urls := r.Form["url"]
		if len(platforms) != len(urls) {
			http.Error(w, "mismatched social link fields", http.StatusBadRequest)
			return
		}
		for i := range platforms {
			sub.Links = append(sub.Links, domain.SocialLink{
				Platform: platforms[i],
				URL:      urls[i],
			})
		}

		file, _, err := r.FormFile("avatar")
		if err == nil {
			sub.AvatarBytes, err = io.ReadAll(file)
			file.Close()
			if err != nil {
				http.Error(w, "failed to read avatar", http.StatusBadRequest)
				return
			}
		} else if !errors.Is(err, http.ErrMissingFile) {
			http.Error(w, "failed to get avatar", http.StatusBadRequest)
			return
		}

		receipt, err := h.service.Publish(ctx, s.Identity, sub)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"handle":  receipt.Handle,
			"version": receipt.Version,
			"url":     receipt.PublicURL.String(),
		})
	}
}

// PublishForm returns the prefilled submission for the connected wallet,
// mirroring the auto-fill behavior of the original form. The handle field
// is fixed once a claim exists; the client disables it accordingly.
func PublishForm(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)

		sub, err := h.service.Autofill(ctx, s.Identity)
		if err != nil {
			http.Error(w, "", http.StatusInternalServerError)
			return
		}

		links := make([]map[string]string, 0, len(sub.Links))
		for _, link := range sub.Links {
			links = append(links, map[string]string{
				"platform": link.Platform,
				"url":      link.URL,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"handle":      sub.Handle,
			"claimed":     sub.Handle != "",
			"title":       sub.Title,
			"description": sub.Description,
			"email":       sub.Email,
			"links":       links,
		})
	}
}
