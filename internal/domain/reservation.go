package domain

import "time"

// SlotDuration is the fixed length of every court reservation.
// EndAt is always derived as StartAt + SlotDuration; a stored record
// with any other length is corrupt.
const SlotDuration = 90 * time.Minute

// Quota limits, counted per creator on the reservation's own start day.
const (
	MaxReservationsPerDay  = 1
	MaxReservationsPerWeek = 4
)

type Reservation struct {
	ID          string    `json:"id"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	CreatedByID string    `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Overlaps reports whether the reservation's half-open interval
// [StartAt, EndAt) intersects [start, end). Touching boundaries
// (EndAt == start) do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartAt.Before(end) && r.EndAt.After(start)
}

// Contains reports whether t falls inside [StartAt, EndAt).
func (r *Reservation) Contains(t time.Time) bool {
	return !t.Before(r.StartAt) && t.Before(r.EndAt)
}

type CreateReservationInput struct {
	CreatedByID string
	StartAt     time.Time
	Extras      []Occupant // participants beyond the creator, in display order
}

// WeekStats is a read-only aggregate over the creator's current week.
type WeekStats struct {
	UserID        string    `json:"user_id"`
	WeekStart     time.Time `json:"week_start"`
	WeekEnd       time.Time `json:"week_end"`
	CreatedToday  int       `json:"created_today"`
	CreatedInWeek int       `json:"created_in_week"`
	DayRemaining  int       `json:"day_remaining"`
	WeekRemaining int       `json:"week_remaining"`
}
