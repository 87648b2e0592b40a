// Package timeslot holds the calendar arithmetic for the booking window,
// day and week boundaries, and interval overlap. Everything here is pure;
// the window slides daily and is recomputed on every call, never stored.
package timeslot

import (
	"time"

	"github.com/antonvlk/CourtBooker/internal/domain"
)

// WindowDays is the size of the rolling booking window: today plus the
// next six days, inclusive.
const WindowDays = 7

// Window is the admissible range for a candidate start time.
type Window struct {
	MinDate time.Time // start of today, 00:00 in loc
	MaxDate time.Time // end of today+6, 23:59:59.999 in loc
}

// Contains reports whether startAt is admissible: MinDate <= startAt <= MaxDate.
func (w Window) Contains(startAt time.Time) bool {
	return !startAt.Before(w.MinDate) && !startAt.After(w.MaxDate)
}

// BookingWindow computes the rolling window around now. Day boundaries
// are taken in loc; the returned instants are absolute.
func BookingWindow(now time.Time, loc *time.Location) Window {
	min := StartOfDay(now, loc)
	return Window{
		MinDate: min,
		MaxDate: EndOfDay(min.AddDate(0, 0, WindowDays-1), loc),
	}
}

// StartOfDay returns t's calendar day at 00:00 in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// EndOfDay returns t's calendar day at 23:59:59.999 in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// WeekBounds returns the Sunday-start week containing t: the most recent
// Sunday at 00:00 and six days later at 23:59:59.999.
func WeekBounds(t time.Time, loc *time.Location) (start, end time.Time) {
	day := StartOfDay(t, loc)
	start = day.AddDate(0, 0, -int(day.Weekday()))
	end = EndOfDay(start.AddDate(0, 0, 6), loc)
	return start, end
}

// SlotEnd derives the only valid end for a slot starting at startAt.
func SlotEnd(startAt time.Time) time.Time {
	return startAt.Add(domain.SlotDuration)
}

// ValidDuration reports whether [startAt, endAt) has exactly the fixed
// slot length. A mismatched caller-supplied end is rejected, never
// silently corrected.
func ValidDuration(startAt, endAt time.Time) bool {
	return endAt.Sub(startAt) == domain.SlotDuration
}

// Overlap reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching boundaries do not overlap.
func Overlap(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}
