package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// the single page: read path and write path share one route
	router.Get("/", h.index)
	router.Post("/", h.createNote)

	// stylesheet and other assets, served verbatim
	router.Handle("/static/*", http.FileServer(http.FS(staticFS)))

	router.Get("/api/version/", h.getServerVersion)

	return router
}
