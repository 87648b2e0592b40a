package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/antonvlk/CourtBooker/internal/domain"
	"github.com/antonvlk/CourtBooker/internal/handler/dto"
	"github.com/antonvlk/CourtBooker/internal/timeslot"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	Move(ctx context.Context, id, requestingUserID string, newStart time.Time) error
	Cancel(ctx context.Context, id, requestingUserID string) error
	EditParticipants(ctx context.Context, id, requestingUserID string, extras []domain.Occupant) error
	CheckSlot(ctx context.Context, startAt time.Time) (bool, string, error)
	Occupancy(ctx context.Context) (*domain.Reservation, []string, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type StatsSvc interface {
	WeekStats(ctx context.Context, userID string) (*domain.WeekStats, error)
}

type Handler struct {
	bookingService BookingSvc
	userService    UserSvc
	statsService   StatsSvc
}

func NewHandler(bookingService BookingSvc, userService UserSvc, statsService StatsSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		userService:    userService,
		statsService:   statsService,
	}
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_at format, expected RFC3339",
		})
		return
	}

	// end_at is derived, never trusted. A caller-supplied value that
	// disagrees is a caller bug and is rejected outright.
	if req.EndAt != "" {
		endAt, err := time.Parse(time.RFC3339, req.EndAt)
		if err != nil || !timeslot.ValidDuration(startAt, endAt) {
			h.handleError(c, domain.ErrInvalidDuration)
			return
		}
	}

	extras, err := dto.ToOccupants(req.Participants)
	if err != nil {
		h.handleError(c, err)
		return
	}

	res, err := h.bookingService.Create(c.Request.Context(), domain.CreateReservationInput{
		CreatedByID: req.UserID,
		StartAt:     startAt,
		Extras:      extras,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	reservations, err := h.bookingService.ListByDate(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) MoveReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.MoveReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	newStart, err := time.Parse(time.RFC3339, req.NewStartAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid new_start_at format, expected RFC3339",
		})
		return
	}

	if err := h.bookingService.Move(c.Request.Context(), id, req.UserID, newStart); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"ok": true})
}

func (h *Handler) EditParticipants(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.EditParticipantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	extras, err := dto.ToOccupants(req.Participants)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.bookingService.EditParticipants(c.Request.Context(), id, req.UserID, extras); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"ok": true})
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"ok": true})
}

// Slots

func (h *Handler) CheckSlot(c *ginext.Context) {
	startAt, err := time.Parse(time.RFC3339, c.Query("start_at"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_at, expected RFC3339"})
		return
	}

	available, reason, err := h.bookingService.CheckSlot(c.Request.Context(), startAt)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SlotCheckResponse{Available: available, Reason: reason})
}

func (h *Handler) Occupancy(c *ginext.Context) {
	res, players, err := h.bookingService.Occupancy(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if res == nil {
		c.JSON(http.StatusOK, dto.OccupancyResponse{Occupied: false})
		return
	}

	resp := dto.ToReservationResponse(res)
	c.JSON(http.StatusOK, dto.OccupancyResponse{
		Occupied:    true,
		Reservation: &resp,
		Players:     players,
	})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		DisplayName:    req.DisplayName,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UserStats(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	stats, err := h.statsService.WeekStats(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWeekStatsResponse(stats))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, dto.ToConflictResponse(err, conflict))
		return
	}

	switch {
	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotConflict),
		errors.Is(err, domain.ErrDailyLimitExceeded),
		errors.Is(err, domain.ErrWeeklyLimitExceeded),
		errors.Is(err, domain.ErrAlreadyEnded):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotAParticipant):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrOutOfWindow),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrDisplayNameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: domain.ErrStoreUnavailable.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
