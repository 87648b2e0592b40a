package service

import (
	"context"
	"fmt"
	"time"

	"github.com/antonvlk/CourtBooker/internal/domain"
	"github.com/antonvlk/CourtBooker/internal/service/ports"
	"github.com/antonvlk/CourtBooker/internal/timeslot"
)

// StatsService is a read-only consumer of the interval store. It never
// writes; quota enforcement stays with the validator and repository.
type StatsService struct {
	repo  ports.ReservationRepo
	loc   *time.Location
	clock Clock
}

func NewStatsService(repo ports.ReservationRepo, loc *time.Location, clock Clock) *StatsService {
	if clock == nil {
		clock = realClock{}
	}
	return &StatsService{repo: repo, loc: loc, clock: clock}
}

func (s *StatsService) WeekStats(ctx context.Context, userID string) (*domain.WeekStats, error) {
	now := s.clock.Now()

	dayStart := timeslot.StartOfDay(now, s.loc)
	dayEnd := timeslot.EndOfDay(now, s.loc)
	today, err := s.repo.CountByCreatorBetween(ctx, userID, dayStart, dayEnd, "")
	if err != nil {
		return nil, fmt.Errorf("count today: %w", err)
	}

	weekStart, weekEnd := timeslot.WeekBounds(now, s.loc)
	week, err := s.repo.CountByCreatorBetween(ctx, userID, weekStart, weekEnd, "")
	if err != nil {
		return nil, fmt.Errorf("count week: %w", err)
	}

	return &domain.WeekStats{
		UserID:        userID,
		WeekStart:     weekStart,
		WeekEnd:       weekEnd,
		CreatedToday:  today,
		CreatedInWeek: week,
		DayRemaining:  remaining(domain.MaxReservationsPerDay, today),
		WeekRemaining: remaining(domain.MaxReservationsPerWeek, week),
	}, nil
}

func remaining(limit, used int) int {
	if used >= limit {
		return 0
	}
	return limit - used
}
