package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/aharkous/portfolio-api/internal/utils"
)

var ErrPastDate = fmt.Errorf("date is in the past")

// BusyProvider supplies the busy intervals of the owner's calendar for a
// time range.
type BusyProvider interface {
	BusyIntervals(ctx context.Context, from time.Time, to time.Time) ([]Interval, error)
}

type Service struct {
	cfg      Config
	calendar BusyProvider
	clock    utils.Clock
}

func NewService(cfg Config, calendar BusyProvider, clock utils.Clock) *Service {
	return &Service{
		cfg:      cfg,
		calendar: calendar,
		clock:    clock,
	}
}

// SlotLabels returns every configured slot label, used by the handler as the
// fail-open fallback when the calendar cannot be reached.
func (s *Service) SlotLabels() []string {
	return s.cfg.SlotLabels()
}

// AvailableTimes computes the bookable slot labels for the given day and
// meeting duration. The day must not be before today.
func (s *Service) AvailableTimes(ctx context.Context, day time.Time, durationMinutes int) ([]string, error) {
	now := s.clock.Now().In(day.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, day.Location())
	if day.Before(today) {
		return nil, ErrPastDate
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), s.cfg.WorkingHours.StartHour, 0, 0, 0, day.Location())
	to := time.Date(day.Year(), day.Month(), day.Day(), s.cfg.WorkingHours.EndHour, 0, 0, 0, day.Location())

	busy, err := s.calendar.BusyIntervals(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch busy intervals: %w", err)
	}

	return AvailableSlots(s.cfg, day, time.Duration(durationMinutes)*time.Minute, busy), nil
}
