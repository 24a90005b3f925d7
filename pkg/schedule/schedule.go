package schedule

import (
	"fmt"
	"time"
)

// Request is a validated call-scheduling submission.
type Request struct {
	Name            string
	Email           string
	Day             time.Time
	SlotLabel       string
	DurationMinutes int
	Topic           string
}

// Booking is the outcome of a successful scheduling request. The calendar
// service is the system of record; this is only held to build the response
// and confirmation emails.
type Booking struct {
	CalendarLink string
	ZoomLink     string
	ZoomPassword string
}

// ErrConflict means the requested slot is already booked.
var ErrConflict = fmt.Errorf("time slot not available")

// ErrInvalidSlot means the submitted time label could not be parsed.
var ErrInvalidSlot = fmt.Errorf("invalid time slot")

// CalendarError marks a failed calendar insert, the one fatal step of the
// scheduling flow: without a calendar entry there is no booking.
type CalendarError struct {
	Err error
}

func (e *CalendarError) Error() string {
	return fmt.Sprintf("failed to schedule in calendar: %v", e.Err)
}

func (e *CalendarError) Unwrap() error {
	return e.Err
}

// formatDuration renders a duration for user-facing text.
func formatDuration(minutes int) string {
	if minutes == 60 {
		return "1 hour"
	}
	return fmt.Sprintf("%d minutes", minutes)
}

// formatDay renders a day for user-facing text, e.g. "Friday, March 14, 2025".
func formatDay(day time.Time) string {
	return day.Format("Monday, January 2, 2006")
}
