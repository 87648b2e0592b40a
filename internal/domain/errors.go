package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUserNotFound        = errors.New("user not found")
)

var (
	ErrOutOfWindow         = errors.New("start time is outside the 7-day booking window")
	ErrInvalidDuration     = errors.New("reservation must be exactly 90 minutes")
	ErrSlotConflict        = errors.New("slot is already reserved")
	ErrDailyLimitExceeded  = errors.New("daily reservation limit reached (max 1 per day)")
	ErrWeeklyLimitExceeded = errors.New("weekly reservation limit reached (max 4 per week)")
)

var (
	ErrNotAParticipant = errors.New("requesting user is not a participant")
	ErrAlreadyEnded    = errors.New("reservation has already ended")
)

var (
	ErrDisplayNameTaken = errors.New("display name is already taken")
	ErrStoreUnavailable = errors.New("reservation store unavailable")
	ErrValidation       = errors.New("validation error")
)

// ConflictError carries the conflicting reservation's interval and the
// resolved display names of its participants. It unwraps to
// ErrSlotConflict so callers keep matching with errors.Is.
type ConflictError struct {
	StartAt      time.Time
	EndAt        time.Time
	Participants []string
}

func (e *ConflictError) Error() string {
	if len(e.Participants) == 0 {
		return fmt.Sprintf("slot %s-%s is already reserved",
			e.StartAt.Format("15:04"), e.EndAt.Format("15:04"))
	}
	return fmt.Sprintf("slot %s-%s is already reserved by %s",
		e.StartAt.Format("15:04"), e.EndAt.Format("15:04"),
		strings.Join(e.Participants, ", "))
}

func (e *ConflictError) Unwrap() error { return ErrSlotConflict }
