package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/antonvlk/CourtBooker/internal/domain"
	"github.com/antonvlk/CourtBooker/internal/service/ports/mocks"
)

func TestStatsService_WeekStats(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewStatsService(repo, time.UTC, fixedClock{testNow})

	repo.EXPECT().CountByCreatorBetween(mock.Anything, "u1",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 23, 59, 59, 999000000, time.UTC), "").Return(1, nil).Once()
	repo.EXPECT().CountByCreatorBetween(mock.Anything, "u1",
		time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 6, 23, 59, 59, 999000000, time.UTC), "").Return(3, nil).Once()

	stats, err := svc.WeekStats(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 1, stats.CreatedToday)
	assert.Equal(t, 3, stats.CreatedInWeek)
	assert.Equal(t, 0, stats.DayRemaining)
	assert.Equal(t, 1, stats.WeekRemaining)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), stats.WeekStart)
}

func TestStatsService_WeekStats_OverLimitClampsToZero(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewStatsService(repo, time.UTC, fixedClock{testNow})

	repo.EXPECT().CountByCreatorBetween(mock.Anything, "u1", mock.Anything, mock.Anything, "").Return(2, nil).Once()
	repo.EXPECT().CountByCreatorBetween(mock.Anything, "u1", mock.Anything, mock.Anything, "").Return(5, nil).Once()

	stats, err := svc.WeekStats(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 0, stats.DayRemaining)
	assert.Equal(t, 0, stats.WeekRemaining)
}

func TestStatsService_WeekStats_StoreError(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewStatsService(repo, time.UTC, fixedClock{testNow})

	repo.EXPECT().CountByCreatorBetween(mock.Anything, "u1", mock.Anything, mock.Anything, "").
		Return(0, domain.ErrStoreUnavailable).Once()

	_, err := svc.WeekStats(context.Background(), "u1")

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
