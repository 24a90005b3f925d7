package google

import (
	"context"
	"time"

	"github.com/aharkous/portfolio-api/pkg/availability"
)

// CalendarStub records calls for orchestration tests.
type CalendarStub struct {
	BusyResult     []availability.Interval
	BusyErr        error
	FreeBusyResult []availability.Interval
	FreeBusyErr    error
	InsertedId     string
	InsertErr      error

	BusyCalls      int
	FreeBusyCalls  int
	InsertCalls    int
	InsertedEvents []Event
}

func NewCalendarStub() *CalendarStub {
	return &CalendarStub{InsertedId: "stub-event-id"}
}

func (s *CalendarStub) BusyIntervals(_ context.Context, _ time.Time, _ time.Time) ([]availability.Interval, error) {
	s.BusyCalls++
	if s.BusyErr != nil {
		return nil, s.BusyErr
	}
	return s.BusyResult, nil
}

func (s *CalendarStub) FreeBusy(_ context.Context, _ time.Time, _ time.Time) ([]availability.Interval, error) {
	s.FreeBusyCalls++
	if s.FreeBusyErr != nil {
		return nil, s.FreeBusyErr
	}
	return s.FreeBusyResult, nil
}

func (s *CalendarStub) InsertEvent(_ context.Context, event Event) (string, error) {
	s.InsertCalls++
	if s.InsertErr != nil {
		return "", s.InsertErr
	}
	s.InsertedEvents = append(s.InsertedEvents, event)
	return s.InsertedId, nil
}

func (s *CalendarStub) Reset() {
	*s = CalendarStub{InsertedId: "stub-event-id"}
}
