package port

import (
	"context"

	"adrelay/internal/core/domain"
)

// ContentUseCase is the primary port into the serving core. Both operations
// return a nil response when no content is available; that is a normal
// outcome of an under-provisioned catalog, not an error.
type ContentUseCase interface {
	// RequestContent serves the best-matching content for the query. An
	// untargeted query takes the random-selection path; a targeted query
	// falls back to random selection over untargeted content when nothing
	// matches. Every non-nil response has exactly one persisted
	// ContentRequest behind it.
	RequestContent(ctx context.Context, query ContentQuery) (*ContentResponse, error)

	// RequestRandomContent serves uniformly random untargeted content in
	// the given format.
	RequestRandomContent(ctx context.Context, source string, format domain.ContentFormat) (*ContentResponse, error)
}

// BillingUseCase is the administrative port for billing aggregation.
type BillingUseCase interface {
	// Aggregate bills every campaign on the given payment interval: one
	// bill per campaign with unbilled impressions, itemized per impression.
	// Re-running for an already-billed interval yields an empty list.
	Aggregate(ctx context.Context, interval domain.PaymentInterval) ([]domain.Bill, error)
}

// ContentQuery carries one serving request into the core.
type ContentQuery struct {
	Source string
	Format domain.ContentFormat
	Target domain.TargetContext
}

// ContentResponse is the DTO returned to transport adapters for a served
// impression. Token identifies the impression record created for it.
type ContentResponse struct {
	ContentID int64
	Format    domain.ContentFormat
	Type      string
	Value     string
	Token     string
}
