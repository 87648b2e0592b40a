package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/antonvlk/CourtBooker/internal/domain"
	"github.com/antonvlk/CourtBooker/internal/handler/dto"
	hmocks "github.com/antonvlk/CourtBooker/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockUserSvc, *hmocks.MockStatsSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)
	statsSvc := hmocks.NewMockStatsSvc(t)

	h := NewHandler(bookingSvc, userSvc, statsSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.POST("/reservations/:id/move", h.MoveReservation)
		api.PUT("/reservations/:id/participants", h.EditParticipants)
		api.DELETE("/reservations/:id", h.CancelReservation)
		api.GET("/slots/check", h.CheckSlot)
		api.GET("/occupancy", h.Occupancy)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/stats", h.UserStats)
	}

	return bookingSvc, userSvc, statsSvc, r
}

func someReservation(userID string, startAt time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:          uuid.New().String(),
		StartAt:     startAt,
		EndAt:       startAt.Add(domain.SlotDuration),
		CreatedByID: userID,
		CreatedAt:   time.Now().UTC(),
	}
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	startAt := time.Now().UTC().Truncate(time.Minute).Add(24 * time.Hour)
	res := someReservation(userID, startAt)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(res, nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:  userID,
		StartAt: startAt.Format(time.RFC3339),
		Participants: []dto.ParticipantInput{
			{UserID: uuid.New().String()},
			{GuestName: "Walk-in"},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, res.ID, resp.ID)
	assert.Equal(t, startAt.Add(domain.SlotDuration).Format(time.RFC3339), resp.EndAt)
}

func TestHandler_CreateReservation_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"user_id":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_InvalidStart(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"user_id":"` + uuid.New().String() + `","start_at":"not-a-time"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_WrongEndAt(t *testing.T) {
	_, _, _, r := setupRouter(t)

	startAt := time.Now().UTC().Truncate(time.Minute).Add(24 * time.Hour)
	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:  uuid.New().String(),
		StartAt: startAt.Format(time.RFC3339),
		EndAt:   startAt.Add(2 * time.Hour).Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_ExplicitEndAtAccepted(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	startAt := time.Now().UTC().Truncate(time.Minute).Add(24 * time.Hour)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(someReservation(userID, startAt), nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:  userID,
		StartAt: startAt.Format(time.RFC3339),
		EndAt:   startAt.Add(domain.SlotDuration).Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateReservation_BothParticipantKeys(t *testing.T) {
	_, _, _, r := setupRouter(t)

	startAt := time.Now().UTC().Truncate(time.Minute).Add(24 * time.Hour)
	body := []byte(fmt.Sprintf(
		`{"user_id":%q,"start_at":%q,"participants":[{"user_id":%q,"guest_name":"Both"}]}`,
		uuid.New().String(), startAt.Format(time.RFC3339), uuid.New().String(),
	))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_SlotConflict(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	startAt := time.Now().UTC().Truncate(time.Minute).Add(24 * time.Hour)
	conflict := &domain.ConflictError{
		StartAt:      startAt,
		EndAt:        startAt.Add(domain.SlotDuration),
		Participants: []string{"alice", "bob"},
	}
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, conflict)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:  uuid.New().String(),
		StartAt: startAt.Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ConflictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, startAt.Format(time.RFC3339), resp.ConflictStart)
	assert.Equal(t, []string{"alice", "bob"}, resp.Participants)
}

func TestHandler_CreateReservation_OutOfWindow(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	startAt := time.Now().UTC().Truncate(time.Minute).Add(30 * 24 * time.Hour)
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrOutOfWindow)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:  uuid.New().String(),
		StartAt: startAt.Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_DailyLimit(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	startAt := time.Now().UTC().Truncate(time.Minute).Add(24 * time.Hour)
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrDailyLimitExceeded)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:  uuid.New().String(),
		StartAt: startAt.Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListReservations_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	reservations := []*domain.Reservation{
		someReservation(uuid.New().String(), day.Add(10*time.Hour)),
		someReservation(uuid.New().String(), day.Add(18*time.Hour)),
	}
	bookingSvc.EXPECT().ListByDate(mock.Anything, day).Return(reservations, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations?date=2024-06-10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListReservations_BadDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations?date=10-06-2024", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MoveReservation_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	userID := uuid.New().String()
	newStart := time.Now().UTC().Truncate(time.Minute).Add(48 * time.Hour)

	bookingSvc.EXPECT().Move(mock.Anything, id, userID, newStart).Return(nil)

	body, _ := json.Marshal(dto.MoveReservationRequest{
		UserID:     userID,
		NewStartAt: newStart.Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/move", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_MoveReservation_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"user_id":"` + uuid.New().String() + `","new_start_at":"2024-06-10T10:00:00Z"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/bad-id/move", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MoveReservation_NotAParticipant(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Move(mock.Anything, id, mock.Anything, mock.Anything).Return(domain.ErrNotAParticipant)

	body, _ := json.Marshal(dto.MoveReservationRequest{
		UserID:     uuid.New().String(),
		NewStartAt: time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/move", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_EditParticipants_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	userID := uuid.New().String()

	bookingSvc.EXPECT().EditParticipants(mock.Anything, id, userID, mock.Anything).Return(nil)

	body, _ := json.Marshal(dto.EditParticipantsRequest{
		UserID:       userID,
		Participants: []dto.ParticipantInput{{GuestName: "Coach"}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/reservations/"+id+"/participants", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelReservation_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	userID := uuid.New().String()

	bookingSvc.EXPECT().Cancel(mock.Anything, id, userID).Return(nil)

	body, _ := json.Marshal(dto.CancelReservationRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/"+id, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelReservation_AlreadyEnded(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id, mock.Anything).Return(domain.ErrAlreadyEnded)

	body, _ := json.Marshal(dto.CancelReservationRequest{UserID: uuid.New().String()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/"+id, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelReservation_NotFound(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, id, mock.Anything).Return(domain.ErrReservationNotFound)

	body, _ := json.Marshal(dto.CancelReservationRequest{UserID: uuid.New().String()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/"+id, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Slots ---

func TestHandler_CheckSlot_Available(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	startAt := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	bookingSvc.EXPECT().CheckSlot(mock.Anything, startAt).Return(true, "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots/check?start_at=2024-06-10T10:00:00Z", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Empty(t, resp.Reason)
}

func TestHandler_CheckSlot_Taken(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	startAt := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	bookingSvc.EXPECT().CheckSlot(mock.Anything, startAt).Return(false, "slot conflict", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots/check?start_at=2024-06-10T10:00:00Z", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Equal(t, "slot conflict", resp.Reason)
}

func TestHandler_CheckSlot_BadParam(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots/check?start_at=tomorrow", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Occupancy_Occupied(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	res := someReservation(uuid.New().String(), time.Now().UTC().Add(-30*time.Minute))
	bookingSvc.EXPECT().Occupancy(mock.Anything).Return(res, []string{"alice", "Walk-in"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/occupancy", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OccupancyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Occupied)
	require.NotNil(t, resp.Reservation)
	assert.Equal(t, res.ID, resp.Reservation.ID)
	assert.Equal(t, []string{"alice", "Walk-in"}, resp.Players)
}

func TestHandler_Occupancy_Free(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Occupancy(mock.Anything).Return(nil, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/occupancy", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OccupancyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Occupied)
	assert.Nil(t, resp.Reservation)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	user := &domain.User{
		ID:          uuid.New().String(),
		DisplayName: "alice",
		CreatedAt:   time.Now().UTC(),
	}
	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{DisplayName: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.DisplayName)
}

func TestHandler_CreateUser_NameTaken(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrDisplayNameTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{DisplayName: "taken"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers_Success(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	users := []*domain.User{
		{ID: uuid.New().String(), DisplayName: "alice", CreatedAt: time.Now().UTC()},
	}
	userSvc.EXPECT().List(mock.Anything).Return(users, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_UserStats_Success(t *testing.T) {
	_, _, statsSvc, r := setupRouter(t)

	userID := uuid.New().String()
	weekStart := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	stats := &domain.WeekStats{
		UserID:        userID,
		WeekStart:     weekStart,
		WeekEnd:       weekStart.AddDate(0, 0, 7).Add(-time.Millisecond),
		CreatedToday:  1,
		CreatedInWeek: 3,
		DayRemaining:  0,
		WeekRemaining: 1,
	}
	statsSvc.EXPECT().WeekStats(mock.Anything, userID).Return(stats, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.WeekStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.CreatedInWeek)
	assert.Equal(t, 1, resp.WeekRemaining)
}

func TestHandler_UserStats_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/bad-id/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UserStats_NotFound(t *testing.T) {
	_, _, statsSvc, r := setupRouter(t)

	userID := uuid.New().String()
	statsSvc.EXPECT().WeekStats(mock.Anything, userID).Return(nil, domain.ErrUserNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Error mapping ---

func TestHandler_HandleError_StoreUnavailable(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Occupancy(mock.Anything).Return(nil, nil, fmt.Errorf("%w: connection refused", domain.ErrStoreUnavailable))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/occupancy", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Occupancy(mock.Anything).Return(nil, nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/occupancy", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
