package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Get("/status", h.status)
		r.Post("/refresh", h.refresh)
		r.Get("/log", h.operationLog)

		r.Route("/applications", func(r chi.Router) {
			r.Get("/", h.listApplications)
			r.Post("/", h.submitApplication)
			r.Post("/{id}/verify", h.verifyApplication)
			r.Post("/{id}/donate", h.donateToApplication)
			r.Post("/{id}/decrypt", h.decryptApplication)
		})
	})

	return router
}
