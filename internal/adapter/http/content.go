package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
)

// contentRequestBody is the wire form of a serving request. Omitted or
// empty target arrays mean the dimension is unconstrained.
type contentRequestBody struct {
	Source                string   `json:"source"`
	Format                string   `json:"format"`
	TargetAges            []string `json:"target_ages"`
	TargetGenders         []string `json:"target_genders"`
	TargetMaritalStatuses []string `json:"target_marital_statuses"`
	TargetPurposesOfUse   []string `json:"target_purposes_of_use"`
}

type randomContentBody struct {
	Source string `json:"source"`
	Format string `json:"format"`
}

func toEnum[T ~string](in []string) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = T(v)
	}
	return out
}

// handleContentRequest serves the best-matching content for a demographic
// target. On success it returns a JSON representation of the served
// content. If no content is available it returns HTTP 204 No Content.
// Malformed targets or formats produce HTTP 400; internal errors HTTP 500.
func (h *Handler) handleContentRequest(w http.ResponseWriter, r *http.Request) {
	var body contentRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	target, err := domain.NewTargetContext(
		toEnum[domain.TargetAge](body.TargetAges),
		toEnum[domain.TargetGender](body.TargetGenders),
		toEnum[domain.TargetMaritalStatus](body.TargetMaritalStatuses),
		toEnum[domain.TargetPurposeOfUse](body.TargetPurposesOfUse),
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	resp, err := h.content.RequestContent(r.Context(), port.ContentQuery{
		Source: body.Source,
		Format: domain.ContentFormat(body.Format),
		Target: target,
	})
	h.writeContentResponse(w, resp, err)
}

// handleRandomContent serves uniformly random untargeted content. Status
// codes follow handleContentRequest.
func (h *Handler) handleRandomContent(w http.ResponseWriter, r *http.Request) {
	var body randomContentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.content.RequestRandomContent(r.Context(), body.Source, domain.ContentFormat(body.Format))
	h.writeContentResponse(w, resp, err)
}

func (h *Handler) writeContentResponse(w http.ResponseWriter, resp *port.ContentResponse, err error) {
	if errors.Is(err, domain.ErrInvalidFormat) || errors.Is(err, domain.ErrInvalidTarget) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("request content error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		// encoding should rarely fail; log and send generic error
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
