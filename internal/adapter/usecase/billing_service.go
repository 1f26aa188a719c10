package usecase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
)

// BillingService implements port.BillingUseCase. Campaigns aggregate in
// parallel; each campaign's select-and-stamp runs inside the repository's
// per-campaign transaction, so concurrent runs over the same campaign
// cannot double-bill.
type BillingService struct {
	repo   port.BillingRepository
	pricer port.Pricer
	logger *slog.Logger

	// now is time.Now unless overridden in tests.
	now func() time.Time
}

// NewBillingService creates the aggregator over the given repository and
// pricing collaborator.
func NewBillingService(repo port.BillingRepository, pricer port.Pricer, logger *slog.Logger) *BillingService {
	return &BillingService{repo: repo, pricer: pricer, logger: logger, now: time.Now}
}

// Aggregate bills every campaign on the given interval. Only requests
// created strictly before the aggregation instant are selected, so records
// arriving concurrently with the run are left for the next one. A campaign
// whose requests are priced in mixed currencies is skipped with nothing
// stamped; the other campaigns of the run are unaffected.
func (s *BillingService) Aggregate(ctx context.Context, interval domain.PaymentInterval) ([]domain.Bill, error) {
	if !interval.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidInterval, interval)
	}
	campaigns, err := s.repo.CampaignsWithInterval(ctx, interval)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	cutoff := s.now().UTC()

	var (
		mu    sync.Mutex
		bills []domain.Bill
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, campaign := range campaigns {
		campaign := campaign
		g.Go(func() error {
			bill, err := s.repo.AggregateCampaign(gctx, campaign, cutoff, func(req domain.ContentRequest) (domain.Money, error) {
				return s.pricer.PriceFor(gctx, req)
			})
			if errors.Is(err, domain.ErrCurrencyMismatch) {
				s.logger.Error("campaign aggregation skipped",
					slog.Int64("campaign_id", campaign.ID),
					slog.Any("error", err))
				return nil
			}
			if err != nil {
				return fmt.Errorf("aggregate campaign %d: %w", campaign.ID, err)
			}
			if bill == nil {
				return nil
			}
			mu.Lock()
			bills = append(bills, *bill)
			mu.Unlock()
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	slices.SortFunc(bills, func(a, b domain.Bill) int {
		return cmp.Compare(a.CampaignID, b.CampaignID)
	})
	return bills, nil
}
