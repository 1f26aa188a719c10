package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adrelay/internal/core/domain"
)

// handleAggregate triggers billing aggregation for one payment interval,
// given as the `interval` query parameter. It returns the bills produced by
// this run; an interval with nothing left to bill yields an empty list.
// Unknown intervals produce HTTP 400, internal errors HTTP 500.
func (h *Handler) handleAggregate(w http.ResponseWriter, r *http.Request) {
	interval := domain.PaymentInterval(r.URL.Query().Get("interval"))
	bills, err := h.billing.Aggregate(r.Context(), interval)
	if errors.Is(err, domain.ErrInvalidInterval) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("aggregate billing error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if bills == nil {
		bills = []domain.Bill{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(bills); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
