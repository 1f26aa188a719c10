package port

import (
	"context"
	"time"

	"adrelay/internal/core/domain"
)

// ContentRepository is the outbound port for the serving path. The catalog
// is read-only from the core's perspective; the only write is the insert of
// new ContentRequest rows, one per served impression.
type ContentRepository interface {
	// FindContentByFormat returns the active catalog entries in the given
	// format, targeted and untargeted alike.
	FindContentByFormat(ctx context.Context, format domain.ContentFormat) ([]domain.Content, error)
	// CreateContentRequest durably persists the impression record and fills
	// in its id and creation timestamp. The serving path must not report a
	// response as successful unless this call succeeded.
	CreateContentRequest(ctx context.Context, req *domain.ContentRequest) error
}

// BillingRepository is the outbound port for aggregation. Implementations
// must serialize AggregateCampaign per campaign: two concurrent runs over
// the same campaign must not stamp overlapping request sets.
type BillingRepository interface {
	// CampaignsWithInterval returns the active campaigns billed on the given
	// interval.
	CampaignsWithInterval(ctx context.Context, interval domain.PaymentInterval) ([]domain.Campaign, error)
	// AggregateCampaign selects the campaign's unbilled requests created
	// strictly before cutoff, assembles a bill with one item per request,
	// persists it and stamps every selected request — all inside a single
	// transaction, so a partial aggregation is never observable. It returns
	// nil when there was nothing to bill.
	AggregateCampaign(ctx context.Context, campaign domain.Campaign, cutoff time.Time, price domain.PriceFunc) (*domain.Bill, error)
}

// Pricer determines the charge for a served impression. It stands in for
// the external pricing collaborator.
type Pricer interface {
	PriceFor(ctx context.Context, req domain.ContentRequest) (domain.Money, error)
}
