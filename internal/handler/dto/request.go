package dto

import (
	"fmt"

	"github.com/antonvlk/CourtBooker/internal/domain"
)

// ParticipantInput is one wire participant: exactly one of user_id or
// guest_name. The creator is implicit and never part of this list.
type ParticipantInput struct {
	UserID    string `json:"user_id,omitempty"`
	GuestName string `json:"guest_name,omitempty"`
}

func (p ParticipantInput) ToOccupant() (domain.Occupant, error) {
	switch {
	case p.UserID != "" && p.GuestName != "":
		return domain.Occupant{}, fmt.Errorf("%w: participant cannot have both user_id and guest_name", domain.ErrValidation)
	case p.UserID != "":
		return domain.RegisteredOccupant(p.UserID), nil
	case p.GuestName != "":
		return domain.GuestOccupant(p.GuestName), nil
	default:
		return domain.Occupant{}, fmt.Errorf("%w: participant needs user_id or guest_name", domain.ErrValidation)
	}
}

func ToOccupants(inputs []ParticipantInput) ([]domain.Occupant, error) {
	occupants := make([]domain.Occupant, 0, len(inputs))
	for _, in := range inputs {
		o, err := in.ToOccupant()
		if err != nil {
			return nil, err
		}
		occupants = append(occupants, o)
	}
	return occupants, nil
}

type CreateReservationRequest struct {
	UserID       string             `json:"user_id" binding:"required,uuid"`
	StartAt      string             `json:"start_at" binding:"required"`
	EndAt        string             `json:"end_at"` // optional; must equal start_at + 90m when present
	Participants []ParticipantInput `json:"participants"`
}

type MoveReservationRequest struct {
	UserID     string `json:"user_id" binding:"required,uuid"`
	NewStartAt string `json:"new_start_at" binding:"required"`
}

type EditParticipantsRequest struct {
	UserID       string             `json:"user_id" binding:"required,uuid"`
	Participants []ParticipantInput `json:"participants"`
}

type CancelReservationRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CreateUserRequest struct {
	DisplayName    string  `json:"display_name" binding:"required"`
	Email          *string `json:"email"`
	TelegramChatID *int64  `json:"telegram_chat_id"`
}
