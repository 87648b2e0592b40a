package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antonvlk/CourtBooker/internal/domain"
	"github.com/antonvlk/CourtBooker/internal/service/ports"
	"github.com/antonvlk/CourtBooker/internal/timeslot"
	"github.com/wb-go/wbf/logger"
)

// Operation labels for metrics.
const (
	opCreate = "create"
	opMove   = "move"
	opCancel = "cancel"
	opEdit   = "edit_participants"
)

type BookingService struct {
	repo      ports.ReservationRepo
	userRepo  ports.UserRepo
	validator *Validator
	notifier  ports.ReservationNotifier
	metrics   ports.DecisionMetrics
	logger    logger.Logger
	clock     Clock
}

func NewBookingService(
	repo ports.ReservationRepo,
	userRepo ports.UserRepo,
	validator *Validator,
	notifier ports.ReservationNotifier,
	metrics ports.DecisionMetrics,
	logger logger.Logger,
	clock Clock,
) *BookingService {
	if clock == nil {
		clock = realClock{}
	}
	return &BookingService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
		clock:     clock,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	user, err := s.userRepo.GetByID(ctx, input.CreatedByID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	startAt := input.StartAt.UTC()
	endAt := timeslot.SlotEnd(startAt)

	if err = s.validator.Validate(ctx, input.CreatedByID, startAt, endAt, ""); err != nil {
		s.reject(opCreate, err)
		return nil, err
	}

	res := &domain.Reservation{
		ID:          uuid.New().String(),
		StartAt:     startAt,
		EndAt:       endAt,
		CreatedByID: input.CreatedByID,
		CreatedAt:   s.clock.Now().UTC(),
	}

	participants, err := buildParticipants(res.ID, input.CreatedByID, input.Extras)
	if err != nil {
		s.reject(opCreate, err)
		return nil, err
	}

	started := time.Now()
	if err = s.repo.Create(ctx, res, participants, s.validator.Guard(startAt)); err != nil {
		s.reject(opCreate, err)
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	s.metrics.RecordCommitLatency(time.Since(started))
	s.metrics.RecordAccepted(opCreate)

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("user_id", input.CreatedByID),
		logger.String("start_at", res.StartAt.Format(time.RFC3339)),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), user, res)

	return res, nil
}

func (s *BookingService) Move(ctx context.Context, id, requestingUserID string, newStart time.Time) error {
	res, participants, err := s.loadForChange(ctx, id, requestingUserID)
	if err != nil {
		s.reject(opMove, err)
		return err
	}

	newStart = newStart.UTC()
	newEnd := timeslot.SlotEnd(newStart)

	// The reservation being moved is excluded from its own conflict
	// check and from quota counts, so a same-day relocation by the same
	// creator does not trip the daily limit on itself.
	if err = s.validator.Validate(ctx, res.CreatedByID, newStart, newEnd, id); err != nil {
		s.reject(opMove, err)
		return err
	}

	for _, p := range participants {
		p.ID = uuid.New().String()
	}

	started := time.Now()
	if err = s.repo.Move(ctx, id, newStart, newEnd, participants, s.validator.Guard(newStart)); err != nil {
		s.reject(opMove, err)
		return fmt.Errorf("move reservation: %w", err)
	}
	s.metrics.RecordCommitLatency(time.Since(started))
	s.metrics.RecordAccepted(opMove)

	s.logger.Info("reservation moved",
		logger.String("reservation_id", id),
		logger.String("user_id", requestingUserID),
		logger.String("new_start_at", newStart.Format(time.RFC3339)),
	)

	moved := *res
	moved.StartAt = newStart
	moved.EndAt = newEnd
	s.notifyCreator(ctx, &moved, ports.ReservationNotifier.NotifyReservationMoved)

	return nil
}

func (s *BookingService) Cancel(ctx context.Context, id, requestingUserID string) error {
	res, _, err := s.loadForChange(ctx, id, requestingUserID)
	if err != nil {
		s.reject(opCancel, err)
		return err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		s.reject(opCancel, err)
		return fmt.Errorf("cancel reservation: %w", err)
	}
	s.metrics.RecordAccepted(opCancel)

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", id),
		logger.String("user_id", requestingUserID),
	)

	s.notifyCreator(ctx, res, ports.ReservationNotifier.NotifyReservationCancelled)

	return nil
}

// EditParticipants replaces the participant set without touching the
// interval, so no window, conflict, or quota check re-runs. The creator
// always stays at order 0.
func (s *BookingService) EditParticipants(ctx context.Context, id, requestingUserID string, extras []domain.Occupant) error {
	res, _, err := s.loadForChange(ctx, id, requestingUserID)
	if err != nil {
		s.reject(opEdit, err)
		return err
	}

	participants, err := buildParticipants(id, res.CreatedByID, extras)
	if err != nil {
		s.reject(opEdit, err)
		return err
	}

	if err = s.repo.ReplaceParticipants(ctx, id, participants); err != nil {
		s.reject(opEdit, err)
		return fmt.Errorf("edit participants: %w", err)
	}
	s.metrics.RecordAccepted(opEdit)

	s.logger.Info("participants updated",
		logger.String("reservation_id", id),
		logger.Int("count", len(participants)),
	)

	return nil
}

// CheckSlot is the read-only availability probe: window and conflict
// only. Store failures propagate as errors, not as "unavailable".
func (s *BookingService) CheckSlot(ctx context.Context, startAt time.Time) (bool, string, error) {
	startAt = startAt.UTC()

	err := s.validator.ValidateSlot(ctx, startAt, timeslot.SlotEnd(startAt))
	if err == nil {
		return true, "", nil
	}
	if errors.Is(err, domain.ErrOutOfWindow) || errors.Is(err, domain.ErrSlotConflict) {
		return false, err.Error(), nil
	}

	return false, "", err
}

// Occupancy resolves who is on court right now. It is a derived read
// over the interval store; no occupancy flag is maintained anywhere.
func (s *BookingService) Occupancy(ctx context.Context) (*domain.Reservation, []string, error) {
	res, err := s.repo.FindActiveAt(ctx, s.clock.Now().UTC())
	if err != nil {
		return nil, nil, fmt.Errorf("occupancy: %w", err)
	}
	if res == nil {
		return nil, nil, nil
	}

	names, err := s.repo.ParticipantNames(ctx, res.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("occupancy names: %w", err)
	}

	return res, names, nil
}

func (s *BookingService) ListByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	from := timeslot.StartOfDay(date, s.validator.loc)
	to := timeslot.EndOfDay(date, s.validator.loc)
	return s.repo.ListBetween(ctx, from, to)
}

func (s *BookingService) Participants(ctx context.Context, reservationID string) ([]*domain.Participant, error) {
	return s.repo.ListParticipants(ctx, reservationID)
}

// loadForChange fetches the reservation and authorizes a mutation: the
// reservation must still be running or in the future, and the requester
// must be a current registered participant. The ended check comes first;
// an ended reservation is immutable regardless of who asks.
func (s *BookingService) loadForChange(ctx context.Context, id, requestingUserID string) (*domain.Reservation, []*domain.Participant, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get reservation: %w", err)
	}

	if !res.EndAt.After(s.clock.Now().UTC()) {
		return nil, nil, domain.ErrAlreadyEnded
	}

	participants, err := s.repo.ListParticipants(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list participants: %w", err)
	}
	if !domain.HasUser(participants, requestingUserID) {
		return nil, nil, domain.ErrNotAParticipant
	}

	return res, participants, nil
}

func (s *BookingService) notifyCreator(ctx context.Context, res *domain.Reservation, notify func(ports.ReservationNotifier, context.Context, *domain.User, *domain.Reservation)) {
	user, err := s.userRepo.GetByID(ctx, res.CreatedByID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", res.CreatedByID),
			logger.String("error", err.Error()),
		)
		return
	}

	go notify(s.notifier, context.WithoutCancel(ctx), user, res)
}

func (s *BookingService) reject(op string, err error) {
	s.metrics.RecordRejected(op, rejectReason(err))
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrOutOfWindow):
		return "out_of_window"
	case errors.Is(err, domain.ErrInvalidDuration):
		return "invalid_duration"
	case errors.Is(err, domain.ErrSlotConflict):
		return "slot_conflict"
	case errors.Is(err, domain.ErrDailyLimitExceeded):
		return "daily_limit"
	case errors.Is(err, domain.ErrWeeklyLimitExceeded):
		return "weekly_limit"
	case errors.Is(err, domain.ErrNotAParticipant):
		return "not_a_participant"
	case errors.Is(err, domain.ErrAlreadyEnded):
		return "already_ended"
	case errors.Is(err, domain.ErrReservationNotFound), errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid_input"
	default:
		return "store_error"
	}
}

// buildParticipants assembles the full set: creator at order 0, extras
// in input order after it.
func buildParticipants(reservationID, creatorID string, extras []domain.Occupant) ([]*domain.Participant, error) {
	participants := make([]*domain.Participant, 0, len(extras)+1)
	participants = append(participants, &domain.Participant{
		ID:            uuid.New().String(),
		ReservationID: reservationID,
		Occupant:      domain.RegisteredOccupant(creatorID),
		Order:         0,
	})

	for i, o := range extras {
		if !o.IsValid() {
			return nil, fmt.Errorf("%w: participant %d must have exactly one of user_id or guest_name", domain.ErrValidation, i)
		}
		participants = append(participants, &domain.Participant{
			ID:            uuid.New().String(),
			ReservationID: reservationID,
			Occupant:      o,
			Order:         i + 1,
		})
	}

	return participants, nil
}
