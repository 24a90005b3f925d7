package schedule

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/aharkous/portfolio-api/internal/config"
	"github.com/aharkous/portfolio-api/pkg/availability"
	"github.com/aharkous/portfolio-api/pkg/google"
	"github.com/aharkous/portfolio-api/pkg/mailer"
	"github.com/aharkous/portfolio-api/pkg/zoom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	service     *Service
	calendar    *google.CalendarStub
	zoomClient  *zoom.ClientStub
	userSender  *mailer.SenderStub
	ownerSender *mailer.SenderStub
}

func setupServiceTest(t *testing.T, zoomCfg config.Zoom) *serviceFixture {
	calendar := google.NewCalendarStub()
	zoomClient := zoom.NewClientStub()
	userSender := mailer.NewSenderStub()
	ownerSender := mailer.NewSenderStub()
	owner := config.EmailIdentity{Name: "Site Owner", Address: "owner@example.com"}

	service := NewService(
		availability.DefaultConfig(),
		calendar,
		zoomClient,
		zoomCfg,
		userSender,
		ownerSender,
		owner,
	)
	t.Cleanup(func() {
		calendar.Reset()
		zoomClient.Reset()
		userSender.Reset()
		ownerSender.Reset()
	})
	return &serviceFixture{
		service:     service,
		calendar:    calendar,
		zoomClient:  zoomClient,
		userSender:  userSender,
		ownerSender: ownerSender,
	}
}

func validRequest() Request {
	return Request{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Day:             time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		SlotLabel:       "10:00 AM",
		DurationMinutes: 30,
		Topic:           "Project kickoff",
	}
}

func TestSchedule_Success(t *testing.T) {
	f := setupServiceTest(t, config.Zoom{})

	booking, err := f.service.Schedule(context.Background(), validRequest())

	require.NoError(t, err)
	expectedLink := "https://calendar.google.com/calendar/event?eid=" +
		base64.StdEncoding.EncodeToString([]byte("stub-event-id"))
	assert.Equal(t, expectedLink, booking.CalendarLink)
	assert.Equal(t, "https://zoom.us/j/123456789", booking.ZoomLink)
	assert.Equal(t, "stub-pass", booking.ZoomPassword)

	// The event carries the derived interval and the meeting details.
	require.Len(t, f.calendar.InsertedEvents, 1)
	event := f.calendar.InsertedEvents[0]
	assert.Equal(t, "Call with Jane Doe", event.Summary)
	assert.Equal(t, time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC), event.StartTime)
	assert.Equal(t, time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC), event.EndTime)
	assert.Contains(t, event.Description, "Project kickoff")
	assert.Contains(t, event.Description, "https://zoom.us/j/123456789")

	// Both parties get an email.
	require.Len(t, f.userSender.Sent, 1)
	assert.Equal(t, "jane@example.com", f.userSender.Sent[0].To)
	assert.Contains(t, f.userSender.Sent[0].Subject, "Call Scheduled")
	assert.Contains(t, f.userSender.Sent[0].HTML, "10:00 AM")

	require.Len(t, f.ownerSender.Sent, 1)
	assert.Equal(t, "owner@example.com", f.ownerSender.Sent[0].To)
	assert.Equal(t, "New Call Scheduled: Jane Doe", f.ownerSender.Sent[0].Subject)
}

func TestSchedule_ConflictShortCircuits(t *testing.T) {
	f := setupServiceTest(t, config.Zoom{})
	f.calendar.FreeBusyResult = []availability.Interval{
		{
			Start: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 14, 11, 0, 0, 0, time.UTC),
		},
	}

	_, err := f.service.Schedule(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrConflict)
	// No downstream action once the slot is known to be taken.
	assert.Zero(t, f.zoomClient.CreateCalls)
	assert.Zero(t, f.calendar.InsertCalls)
	assert.Zero(t, f.userSender.Calls)
	assert.Zero(t, f.ownerSender.Calls)
}

func TestSchedule_PreCheckFailureProceeds(t *testing.T) {
	f := setupServiceTest(t, config.Zoom{})
	f.calendar.FreeBusyErr = fmt.Errorf("freebusy unavailable")

	booking, err := f.service.Schedule(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, booking.CalendarLink)
	assert.Equal(t, 1, f.calendar.InsertCalls)
}

func TestSchedule_ZoomFailureFallsBackToPersonalLink(t *testing.T) {
	f := setupServiceTest(t, config.Zoom{
		PersonalMeetingId: "5551234567",
		MeetingPassword:   "fallback-pass",
	})
	f.zoomClient.Err = fmt.Errorf("zoom quota exceeded")

	booking, err := f.service.Schedule(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "https://zoom.us/j/5551234567", booking.ZoomLink)
	assert.Equal(t, "fallback-pass", booking.ZoomPassword)
	assert.Equal(t, 1, f.calendar.InsertCalls)

	// The owner's notification surfaces the Zoom failure.
	require.Len(t, f.ownerSender.Sent, 1)
	assert.Contains(t, f.ownerSender.Sent[0].HTML, "zoom quota exceeded")
}

func TestSchedule_ZoomFailureWithoutFallbackStillBooks(t *testing.T) {
	f := setupServiceTest(t, config.Zoom{})
	f.zoomClient.Err = fmt.Errorf("zoom down")

	booking, err := f.service.Schedule(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, booking.ZoomLink)
	assert.Empty(t, booking.ZoomPassword)
	assert.Equal(t, 1, f.calendar.InsertCalls)
}

func TestSchedule_CalendarInsertFailureIsFatal(t *testing.T) {
	f := setupServiceTest(t, config.Zoom{})
	f.calendar.InsertErr = fmt.Errorf("calendar API error")

	_, err := f.service.Schedule(context.Background(), validRequest())

	var calendarErr *CalendarError
	require.ErrorAs(t, err, &calendarErr)
	assert.Contains(t, calendarErr.Err.Error(), "calendar API error")
	// No emails for a booking that does not exist.
	assert.Zero(t, f.userSender.Calls)
	assert.Zero(t, f.ownerSender.Calls)
}

func TestSchedule_EmailFailureDoesNotInvalidateBooking(t *testing.T) {
	f := setupServiceTest(t, config.Zoom{})
	f.userSender.Err = fmt.Errorf("smtp down")
	f.ownerSender.Err = fmt.Errorf("smtp down")

	booking, err := f.service.Schedule(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, booking.CalendarLink)
	assert.Equal(t, 1, f.userSender.Calls)
	assert.Equal(t, 1, f.ownerSender.Calls)
}

func TestSchedule_InvalidSlotLabel(t *testing.T) {
	f := setupServiceTest(t, config.Zoom{})
	req := validRequest()
	req.SlotLabel = "not a time"

	_, err := f.service.Schedule(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidSlot)
	assert.Zero(t, f.calendar.FreeBusyCalls)
}

func TestSchedule_DefaultTopic(t *testing.T) {
	f := setupServiceTest(t, config.Zoom{})
	req := validRequest()
	req.Topic = ""

	_, err := f.service.Schedule(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, f.zoomClient.Requests, 1)
	assert.Equal(t, "Call with Jane Doe - Discussion", f.zoomClient.Requests[0].Topic)
	require.Len(t, f.calendar.InsertedEvents, 1)
	assert.Contains(t, f.calendar.InsertedEvents[0].Description, "Not specified")
}
