package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkstash/linkstash/internal/httpserver/deps"
	"github.com/linkstash/linkstash/internal/httpserver/handlers"
	"github.com/linkstash/linkstash/internal/httpserver/mw"
)

func init() { Register(registerLinks) }

func registerLinks(r chi.Router, d deps.Deps) {
	r.Route("/api/links", func(r chi.Router) {
		r.Use(mw.Mode())
		r.Get("/", handlers.ListLinks(d))
		r.Post("/", handlers.AddLink(d))
		r.Delete("/", handlers.DeleteLinks(d))
		r.Post("/import", handlers.ImportFile(d))
		r.Get("/export", handlers.ExportLinks(d))
	})
}
