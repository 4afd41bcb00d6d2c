package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Timeout(h.requestTimeout))
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.Get("/api/version/", h.getServerVersion)

	// throttled lookups
	router.Group(func(r chi.Router) {
		r.Use(h.limiter.withRateLimit)
		r.Get("/api/address/search/", h.searchAddresses)
		r.Get("/api/address/search/{term}", h.searchAddresses)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
