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

	// read-only routes
	router.Group(func(r chi.Router) {
		r.Get("/api/status", h.getStatus)
		r.Get("/api/version", h.getVersion)
		r.Get("/api/ws", h.serveWs)
	})

	// routes acting on the dialer
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)

		r.Post("/api/call", h.call)
		r.Post("/api/hangup", h.hangup)
		r.Post("/api/mute", h.toggleMute)
		r.Post("/api/keypad/{key}", h.pressKey)
		r.Put("/api/destination", h.setDestination)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
