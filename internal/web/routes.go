package web

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	connected := ConnectedMiddleware(h)
	r.Use(SessionMiddleware(h))

	r.Post(SessionRoute, Connect(h))
	r.Get("/disconnect", Disconnect(h))

	r.Route(PublishRoute, func(r chi.Router) {
		r.Method(http.MethodPost, "/", connected(Publish(h)))
		r.Method(http.MethodGet, "/form", connected(PublishForm(h)))
	})

	r.Route("/f", func(r chi.Router) {
		r.Get("/{digest}", GetAvatar(h))
	})

	r.Get("/{handle}.html", ResolveHandle(h))
	r.Get("/{handle}/history", HandleHistory(h))

	h.MountStaticRoutes(r)
}

func (h *Handler) MountStaticRoutes(r chi.Router) {
	wd, _ := os.Getwd()
	wd = filepath.Join(wd, h.Config.StaticDir)
	f := os.DirFS(wd)

	fileServer := http.FileServer(http.FS(f))
	r.Handle("/static/{name}", http.StripPrefix(
		"/static/",
		fileServer,
	))
}
