package auditor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/antonvlk/CourtBooker/internal/auditor/mocks"
	"github.com/antonvlk/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestAuditor_Sweep_ListsWindow(t *testing.T) {
	store := mocks.NewMockIntervalLister(t)
	log := newTestLogger(t)

	a := New(store, 50*time.Millisecond, log)

	store.EXPECT().ListBetween(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	a.Start(ctx)

	assert.GreaterOrEqual(t, len(store.Calls), 1)
}

func TestAuditor_Sweep_HandlesError(t *testing.T) {
	store := mocks.NewMockIntervalLister(t)
	log := newTestLogger(t)

	a := New(store, 50*time.Millisecond, log)

	store.EXPECT().ListBetween(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	a.Start(ctx)

	assert.GreaterOrEqual(t, len(store.Calls), 1)
}

func TestAuditor_StopsOnContextCancel(t *testing.T) {
	store := mocks.NewMockIntervalLister(t)
	log := newTestLogger(t)

	a := New(store, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		a.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("auditor did not stop on context cancel")
	}
}

func TestAuditor_Check_DetectsViolations(t *testing.T) {
	store := mocks.NewMockIntervalLister(t)
	log := newTestLogger(t)

	a := New(store, time.Second, log)

	base := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)

	// Check only logs; the assertions here are that it neither panics
	// nor mutates anything on overlapping and malformed input.
	a.Check([]*domain.Reservation{
		{ID: "r1", StartAt: base, EndAt: base.Add(90 * time.Minute)},
		{ID: "r2", StartAt: base.Add(45 * time.Minute), EndAt: base.Add(135 * time.Minute)},
		{ID: "r3", StartAt: base.Add(3 * time.Hour), EndAt: base.Add(4 * time.Hour)}, // wrong duration
	})

	a.Check(nil)
}
