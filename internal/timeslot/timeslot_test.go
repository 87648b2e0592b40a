package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingWindow_Bounds(t *testing.T) {
	now := time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC)

	w := BookingWindow(now, time.UTC)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), w.MinDate)
	assert.Equal(t, time.Date(2024, 1, 7, 23, 59, 59, 999000000, time.UTC), w.MaxDate)
}

func TestWindow_Contains(t *testing.T) {
	now := time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC)
	w := BookingWindow(now, time.UTC)

	tests := []struct {
		name    string
		startAt time.Time
		want    bool
	}{
		{"start of today", w.MinDate, true},
		{"just before today", w.MinDate.Add(-time.Second), false},
		{"late on day six", time.Date(2024, 1, 7, 22, 0, 0, 0, time.UTC), true},
		{"exactly max date", w.MaxDate, true},
		{"one second past max", w.MaxDate.Add(time.Second), false},
		{"day seven", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Contains(tt.startAt))
		})
	}
}

func TestBookingWindow_NonUTCLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 01:00 UTC is still the previous evening in Sao Paulo (UTC-3).
	now := time.Date(2024, 6, 15, 1, 0, 0, 0, time.UTC)

	w := BookingWindow(now, loc)

	assert.Equal(t, time.Date(2024, 6, 14, 0, 0, 0, 0, loc), w.MinDate)
	assert.Equal(t, time.Date(2024, 6, 20, 23, 59, 59, 999000000, loc), w.MaxDate)
}

func TestWeekBounds_SundayStart(t *testing.T) {
	tests := []struct {
		name      string
		day       time.Time
		wantStart time.Time
	}{
		{
			"mid-week wednesday",
			time.Date(2024, 1, 3, 19, 0, 0, 0, time.UTC), // Wednesday
			time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday is its own week start",
			time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			"saturday belongs to the week behind it",
			time.Date(2024, 1, 6, 23, 0, 0, 0, time.UTC),
			time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekBounds(tt.day, time.UTC)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantStart.AddDate(0, 0, 6).Add(24*time.Hour-time.Millisecond), end)
		})
	}
}

func TestSlotEnd_FixedDuration(t *testing.T) {
	start := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)

	end := SlotEnd(start)

	assert.Equal(t, time.Date(2024, 1, 1, 20, 30, 0, 0, time.UTC), end)
	assert.True(t, ValidDuration(start, end))
	assert.False(t, ValidDuration(start, end.Add(time.Minute)))
	assert.False(t, ValidDuration(start, start))
}

func TestSlotEnd_SpansMidnight(t *testing.T) {
	start := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)

	end := SlotEnd(start)

	assert.Equal(t, time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC), end)
}

func TestOverlap_HalfOpen(t *testing.T) {
	s := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)
	e := s.Add(90 * time.Minute)

	tests := []struct {
		name   string
		s2, e2 time.Time
		want   bool
	}{
		{"identical", s, e, true},
		{"starts inside", s.Add(45 * time.Minute), e.Add(45 * time.Minute), true},
		{"ends inside", s.Add(-45 * time.Minute), s.Add(45 * time.Minute), true},
		{"fully contains", s.Add(-time.Hour), e.Add(time.Hour), true},
		{"touching before", s.Add(-90 * time.Minute), s, false},
		{"touching after", e, e.Add(90 * time.Minute), false},
		{"disjoint", e.Add(time.Hour), e.Add(2 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlap(s, e, tt.s2, tt.e2))
			assert.Equal(t, tt.want, Overlap(tt.s2, tt.e2, s, e))
		})
	}
}
