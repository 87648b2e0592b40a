package service

import (
	"context"
	"fmt"
	"time"

	"github.com/antonvlk/CourtBooker/internal/domain"
	"github.com/antonvlk/CourtBooker/internal/service/ports"
	"github.com/antonvlk/CourtBooker/internal/timeslot"
)

// Clock lets tests pin "today" for window and quota boundaries.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Validator decides whether a candidate slot may be accepted. Checks run
// in a fixed order and short-circuit on the first failure; callers rely
// on that order for the error they surface. Any unreadable store state
// rejects, never accepts.
type Validator struct {
	repo  ports.ReservationRepo
	loc   *time.Location
	clock Clock
}

func NewValidator(repo ports.ReservationRepo, loc *time.Location, clock Clock) *Validator {
	if clock == nil {
		clock = realClock{}
	}
	return &Validator{repo: repo, loc: loc, clock: clock}
}

// Validate runs the full pipeline: window, duration, conflict, daily
// quota, weekly quota. excludeID is set when revalidating a move so the
// reservation neither conflicts with itself nor counts against its own
// creator's quotas.
func (v *Validator) Validate(ctx context.Context, userID string, startAt, endAt time.Time, excludeID string) error {
	if err := v.checkWindow(startAt); err != nil {
		return err
	}
	if !timeslot.ValidDuration(startAt, endAt) {
		return domain.ErrInvalidDuration
	}
	if err := v.checkConflict(ctx, startAt, endAt, excludeID); err != nil {
		return err
	}
	return v.checkQuotas(ctx, userID, startAt, excludeID)
}

// ValidateSlot is the read-only availability probe: window and conflict
// only. Quotas are enforced at commit time, not at probe time.
func (v *Validator) ValidateSlot(ctx context.Context, startAt, endAt time.Time) error {
	if err := v.checkWindow(startAt); err != nil {
		return err
	}
	return v.checkConflict(ctx, startAt, endAt, "")
}

// Guard derives the commit-time quota bounds from the candidate start,
// for the repository's in-transaction re-check.
func (v *Validator) Guard(startAt time.Time) ports.CommitGuard {
	weekStart, weekEnd := timeslot.WeekBounds(startAt, v.loc)
	return ports.CommitGuard{
		DayStart:  timeslot.StartOfDay(startAt, v.loc),
		DayEnd:    timeslot.EndOfDay(startAt, v.loc),
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
	}
}

func (v *Validator) checkWindow(startAt time.Time) error {
	if !timeslot.BookingWindow(v.clock.Now(), v.loc).Contains(startAt) {
		return domain.ErrOutOfWindow
	}
	return nil
}

func (v *Validator) checkConflict(ctx context.Context, startAt, endAt time.Time, excludeID string) error {
	existing, err := v.repo.FindOverlapping(ctx, startAt, endAt, excludeID)
	if err != nil {
		return fmt.Errorf("conflict check: %w", err)
	}
	if existing == nil {
		return nil
	}

	// The decision is already made; missing names only degrade the message.
	names, err := v.repo.ParticipantNames(ctx, existing.ID)
	if err != nil {
		names = nil
	}

	return &domain.ConflictError{
		StartAt:      existing.StartAt,
		EndAt:        existing.EndAt,
		Participants: names,
	}
}

// checkQuotas counts by the candidate's own start day and week, not by
// wall-clock now. That matters for moves to a different date.
func (v *Validator) checkQuotas(ctx context.Context, userID string, startAt time.Time, excludeID string) error {
	dayStart := timeslot.StartOfDay(startAt, v.loc)
	dayEnd := timeslot.EndOfDay(startAt, v.loc)

	daily, err := v.repo.CountByCreatorBetween(ctx, userID, dayStart, dayEnd, excludeID)
	if err != nil {
		return fmt.Errorf("daily quota check: %w", err)
	}
	if daily >= domain.MaxReservationsPerDay {
		return domain.ErrDailyLimitExceeded
	}

	weekStart, weekEnd := timeslot.WeekBounds(startAt, v.loc)
	weekly, err := v.repo.CountByCreatorBetween(ctx, userID, weekStart, weekEnd, excludeID)
	if err != nil {
		return fmt.Errorf("weekly quota check: %w", err)
	}
	if weekly >= domain.MaxReservationsPerWeek {
		return domain.ErrWeeklyLimitExceeded
	}

	return nil
}
