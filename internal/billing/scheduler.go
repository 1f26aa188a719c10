// Package billing runs the periodic aggregation trigger. One cron entry is
// registered per payment interval; each run invokes the billing usecase for
// its interval.
package billing

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
)

// runTimeout bounds one scheduled aggregation run.
const runTimeout = 5 * time.Minute

// Scheduler drives periodic billing aggregation via cron.
type Scheduler struct {
	cron   *cron.Cron
	svc    port.BillingUseCase
	logger *slog.Logger
}

// NewScheduler creates a stopped scheduler; call Register for each interval
// and then Start.
func NewScheduler(svc port.BillingUseCase, logger *slog.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), svc: svc, logger: logger}
}

// Register schedules aggregation of the given payment interval on the given
// cron spec (standard five-field format).
func (s *Scheduler) Register(interval domain.PaymentInterval, spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		bills, err := s.svc.Aggregate(ctx, interval)
		if err != nil {
			s.logger.Error("scheduled aggregation failed",
				slog.String("interval", string(interval)),
				slog.Any("error", err))
			return
		}
		s.logger.Info("scheduled aggregation complete",
			slog.String("interval", string(interval)),
			slog.Int("bills", len(bills)))
	})
	return err
}

// Start begins running registered entries in their own goroutine.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
