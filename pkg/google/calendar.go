package google

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aharkous/portfolio-api/internal/config"
	"github.com/aharkous/portfolio-api/pkg/availability"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Event is a calendar entry to be created on the owner's calendar.
type Event struct {
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
}

type Calendar interface {
	// BusyIntervals lists the busy ranges derived from all events in [from, to).
	BusyIntervals(ctx context.Context, from time.Time, to time.Time) ([]availability.Interval, error)
	// FreeBusy queries the free/busy state of the calendar in [from, to).
	FreeBusy(ctx context.Context, from time.Time, to time.Time) ([]availability.Interval, error)
	// InsertEvent creates the event and returns its id.
	InsertEvent(ctx context.Context, event Event) (string, error)
}

// CalendarImpl talks to Google Calendar as a service account.
type CalendarImpl struct {
	cfg config.Google
}

func NewCalendar(cfg config.Google) *CalendarImpl {
	return &CalendarImpl{cfg: cfg}
}

func (c *CalendarImpl) prepareService(ctx context.Context) (*gcal.Service, error) {
	jwtConfig := &jwt.Config{
		Email: c.cfg.ClientEmail,
		// Private keys arrive through env vars with literal "\n" sequences.
		PrivateKey: []byte(strings.ReplaceAll(c.cfg.PrivateKey, `\n`, "\n")),
		Scopes:     []string{gcal.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}

	service, err := gcal.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		err := fmt.Errorf("unable to create Calendar client: %v", err)
		log.Error(err)
		return nil, err
	}
	return service, nil
}

func (c *CalendarImpl) BusyIntervals(ctx context.Context, from time.Time, to time.Time) ([]availability.Interval, error) {
	service, err := c.prepareService(ctx)
	if err != nil {
		return nil, err
	}

	googleEvents, err := service.Events.List(c.cfg.CalendarId).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		Context(ctx).
		Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve events from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}

	intervals := make([]availability.Interval, 0, len(googleEvents.Items))
	for _, item := range googleEvents.Items {
		start, err := parseEventTime(item.Start)
		if err != nil {
			log.Warnf("skipping event with unparseable start time: %s", item.Summary)
			continue
		}
		end, err := parseEventTime(item.End)
		if err != nil {
			log.Warnf("skipping event with unparseable end time: %s", item.Summary)
			continue
		}
		intervals = append(intervals, availability.Interval{Start: start, End: end})
	}
	return intervals, nil
}

func (c *CalendarImpl) FreeBusy(ctx context.Context, from time.Time, to time.Time) ([]availability.Interval, error) {
	service, err := c.prepareService(ctx)
	if err != nil {
		return nil, err
	}

	response, err := service.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: c.cfg.CalendarId}},
	}).Context(ctx).Do()
	if err != nil {
		err := fmt.Errorf("unable to query free/busy state: %v", err)
		log.Error(err)
		return nil, err
	}

	calendarInfo, ok := response.Calendars[c.cfg.CalendarId]
	if !ok {
		return nil, nil
	}

	intervals := make([]availability.Interval, 0, len(calendarInfo.Busy))
	for _, period := range calendarInfo.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, fmt.Errorf("unable to parse busy period start: %w", err)
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, fmt.Errorf("unable to parse busy period end: %w", err)
		}
		intervals = append(intervals, availability.Interval{Start: start, End: end})
	}
	return intervals, nil
}

func (c *CalendarImpl) InsertEvent(ctx context.Context, event Event) (string, error) {
	service, err := c.prepareService(ctx)
	if err != nil {
		return "", err
	}

	result, err := service.Events.Insert(c.cfg.CalendarId, &gcal.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &gcal.EventDateTime{
			DateTime: event.StartTime.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcal.EventDateTime{
			DateTime: event.EndTime.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}).Context(ctx).Do()
	if err != nil {
		err := fmt.Errorf("unable to insert event in Google Calendar: %v", err)
		log.Error(err)
		return "", err
	}

	return result.Id, nil
}

// parseEventTime handles both timed events (DateTime) and all-day events
// (Date only), which still block the whole day.
func parseEventTime(t *gcal.EventDateTime) (time.Time, error) {
	if t == nil {
		return time.Time{}, fmt.Errorf("missing event time")
	}
	if t.DateTime != "" {
		return time.Parse(time.RFC3339, t.DateTime)
	}
	return time.Parse("2006-01-02", t.Date)
}
