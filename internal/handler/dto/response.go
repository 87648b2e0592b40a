package dto

import (
	"time"

	"github.com/antonvlk/CourtBooker/internal/domain"
)

type ReservationResponse struct {
	ID          string `json:"id"`
	StartAt     string `json:"start_at"`
	EndAt       string `json:"end_at"`
	CreatedByID string `json:"created_by_id"`
	CreatedAt   string `json:"created_at"`
}

type SlotCheckResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type OccupancyResponse struct {
	Occupied    bool                 `json:"occupied"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
	Players     []string             `json:"players,omitempty"`
}

type WeekStatsResponse struct {
	UserID        string `json:"user_id"`
	WeekStart     string `json:"week_start"`
	WeekEnd       string `json:"week_end"`
	CreatedToday  int    `json:"created_today"`
	CreatedInWeek int    `json:"created_in_week"`
	DayRemaining  int    `json:"day_remaining"`
	WeekRemaining int    `json:"week_remaining"`
}

type UserResponse struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Email       *string `json:"email,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictResponse is the 409 body for slot conflicts: the error plus
// the conflicting interval and who holds it, so the UI can offer
// another slot.
type ConflictResponse struct {
	Error         string   `json:"error"`
	ConflictStart string   `json:"conflict_start"`
	ConflictEnd   string   `json:"conflict_end"`
	Participants  []string `json:"participants,omitempty"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		StartAt:     r.StartAt.Format(time.RFC3339),
		EndAt:       r.EndAt.Format(time.RFC3339),
		CreatedByID: r.CreatedByID,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

func ToWeekStatsResponse(s *domain.WeekStats) WeekStatsResponse {
	return WeekStatsResponse{
		UserID:        s.UserID,
		WeekStart:     s.WeekStart.Format(time.RFC3339),
		WeekEnd:       s.WeekEnd.Format(time.RFC3339),
		CreatedToday:  s.CreatedToday,
		CreatedInWeek: s.CreatedInWeek,
		DayRemaining:  s.DayRemaining,
		WeekRemaining: s.WeekRemaining,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

func ToConflictResponse(err error, conflict *domain.ConflictError) ConflictResponse {
	return ConflictResponse{
		Error:         err.Error(),
		ConflictStart: conflict.StartAt.Format(time.RFC3339),
		ConflictEnd:   conflict.EndAt.Format(time.RFC3339),
		Participants:  conflict.Participants,
	}
}
