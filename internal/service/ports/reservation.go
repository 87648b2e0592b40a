package ports

import (
	"context"
	"time"

	"github.com/antonvlk/CourtBooker/internal/domain"
)

// CommitGuard carries the day and week bounds the repository re-checks
// quotas against inside the commit transaction. Bounds are computed from
// the candidate start time, not wall-clock now.
type CommitGuard struct {
	DayStart  time.Time
	DayEnd    time.Time
	WeekStart time.Time
	WeekEnd   time.Time
}

type ReservationRepo interface {
	// Create persists the reservation and its participant set in one
	// transaction, re-checking conflict and quotas under a lock.
	Create(ctx context.Context, r *domain.Reservation, participants []*domain.Participant, guard CommitGuard) error
	// Move updates the interval and replaces the participant set in one
	// transaction, excluding the reservation itself from re-checks.
	Move(ctx context.Context, id string, newStart, newEnd time.Time, participants []*domain.Participant, guard CommitGuard) error
	ReplaceParticipants(ctx context.Context, reservationID string, participants []*domain.Participant) error
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// FindOverlapping returns the first reservation whose half-open
	// interval intersects [start, end), or nil when the slot is free.
	// excludeID, when non-empty, removes that reservation from the check.
	FindOverlapping(ctx context.Context, start, end time.Time, excludeID string) (*domain.Reservation, error)
	// CountByCreatorBetween counts reservations created by userID whose
	// start_at falls within [from, to], minus excludeID when non-empty.
	CountByCreatorBetween(ctx context.Context, userID string, from, to time.Time, excludeID string) (int, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
	FindActiveAt(ctx context.Context, t time.Time) (*domain.Reservation, error)

	ListParticipants(ctx context.Context, reservationID string) ([]*domain.Participant, error)
	// ParticipantNames resolves display names (registered users joined
	// against the users table, guests verbatim) in participant order.
	ParticipantNames(ctx context.Context, reservationID string) ([]string, error)
}
