package ports

import (
	"context"

	"github.com/antonvlk/CourtBooker/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, user *domain.User, r *domain.Reservation)
	NotifyReservationMoved(ctx context.Context, user *domain.User, r *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, user *domain.User, r *domain.Reservation)
}
