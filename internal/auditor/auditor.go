// Package auditor runs the periodic invariant sweep: if a concurrent
// writer ever slips past the transactional re-check, the sweep finds the
// overlapping pair and alerts through the log instead of letting two
// accepted reservations coexist silently.
package auditor

import (
	"context"
	"time"

	"github.com/antonvlk/CourtBooker/internal/domain"
	"github.com/antonvlk/CourtBooker/internal/timeslot"
	"github.com/wb-go/wbf/logger"
)

type intervalLister interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
}

type Auditor struct {
	store    intervalLister
	interval time.Duration
	logger   logger.Logger
}

func New(store intervalLister, interval time.Duration, logger logger.Logger) *Auditor {
	return &Auditor{
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

func (a *Auditor) Start(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.logger.Info("auditor started",
		logger.Duration("interval", a.interval),
	)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("auditor stopped")
			return
		case <-ticker.C:
			a.sweep(ctx)
		}
	}
}

func (a *Auditor) sweep(ctx context.Context) {
	now := time.Now().UTC()
	from := now.Add(-24 * time.Hour)
	to := now.AddDate(0, 0, timeslot.WindowDays)

	reservations, err := a.store.ListBetween(ctx, from, to)
	if err != nil {
		a.logger.Error("audit sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	a.Check(reservations)
}

// Check scans a start-ordered slice for overlapping pairs and wrong
// durations, logging each violation. Exposed for tests.
func (a *Auditor) Check(reservations []*domain.Reservation) {
	for i, r := range reservations {
		if r.EndAt.Sub(r.StartAt) != domain.SlotDuration {
			a.logger.Error("reservation has invalid duration",
				logger.String("reservation_id", r.ID),
				logger.String("start_at", r.StartAt.Format(time.RFC3339)),
				logger.String("end_at", r.EndAt.Format(time.RFC3339)),
			)
		}

		// Start-ordered input: only the next neighbor can overlap a
		// non-overlapping history.
		if i+1 < len(reservations) {
			next := reservations[i+1]
			if timeslot.Overlap(r.StartAt, r.EndAt, next.StartAt, next.EndAt) {
				a.logger.Error("overlapping reservations detected",
					logger.String("reservation_id", r.ID),
					logger.String("other_id", next.ID),
					logger.String("start_at", next.StartAt.Format(time.RFC3339)),
				)
			}
		}
	}
}
