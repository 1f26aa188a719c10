package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"adrelay/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the serving and billing usecases and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	content port.ContentUseCase
	billing port.BillingUseCase
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. The billing
// aggregation route is an administrative trigger, not a public-facing one;
// deployments front it with their own access control.
func NewHandler(content port.ContentUseCase, billing port.BillingUseCase, logger *slog.Logger) *Handler {
	h := &Handler{content: content, billing: billing, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/content/request", h.handleContentRequest)
		r.Post("/content/random", h.handleRandomContent)
		r.Post("/billing/aggregate", h.handleAggregate)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
