package schedule

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/aharkous/portfolio-api/internal/config"
	"github.com/aharkous/portfolio-api/pkg/availability"
	"github.com/aharkous/portfolio-api/pkg/google"
	"github.com/aharkous/portfolio-api/pkg/mailer"
	"github.com/aharkous/portfolio-api/pkg/zoom"
	log "github.com/sirupsen/logrus"
)

// Service turns a scheduling request into a confirmed booking: free/busy
// pre-check, Zoom meeting, calendar event, confirmation emails.
//
// Concurrent requests for the same slot are not serialized; the pre-check is
// a best-effort read before the insert and two simultaneous bookings can
// race. Accepted for a personal scheduling tool.
type Service struct {
	availCfg    availability.Config
	calendar    google.Calendar
	zoomClient  zoom.Client
	zoomCfg     config.Zoom
	userSender  mailer.Sender
	ownerSender mailer.Sender
	owner       config.EmailIdentity
}

func NewService(
	availCfg availability.Config,
	calendar google.Calendar,
	zoomClient zoom.Client,
	zoomCfg config.Zoom,
	userSender mailer.Sender,
	ownerSender mailer.Sender,
	owner config.EmailIdentity,
) *Service {
	return &Service{
		availCfg:    availCfg,
		calendar:    calendar,
		zoomClient:  zoomClient,
		zoomCfg:     zoomCfg,
		userSender:  userSender,
		ownerSender: ownerSender,
		owner:       owner,
	}
}

func (s *Service) Schedule(ctx context.Context, req Request) (*Booking, error) {
	slot, err := availability.ParseLabel(req.SlotLabel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}
	interval := s.availCfg.SlotInterval(req.Day, slot, time.Duration(req.DurationMinutes)*time.Minute)

	// The client already checked availability, but its view may be stale;
	// re-query the calendar for the chosen range.
	busy, err := s.calendar.FreeBusy(ctx, interval.Start, interval.End)
	if err != nil {
		// Proceed without conflict knowledge rather than blocking the user.
		log.Errorf("error checking availability, proceeding with booking: %v", err)
	} else if len(busy) > 0 {
		return nil, ErrConflict
	}

	zoomLink, zoomPassword, zoomErr := s.createMeeting(ctx, req, interval)

	description := fmt.Sprintf(
		"Topic: %s\nName: %s\nEmail: %s\nDuration: %s\n\nJoin Zoom Meeting: %s",
		topicOrDefault(req.Topic), req.Name, req.Email, formatDuration(req.DurationMinutes), zoomLink,
	)
	if zoomPassword != "" {
		description += "\nPassword: " + zoomPassword
	}

	eventId, err := s.calendar.InsertEvent(ctx, google.Event{
		Summary:     "Call with " + req.Name,
		Description: description,
		StartTime:   interval.Start,
		EndTime:     interval.End,
	})
	if err != nil {
		return nil, &CalendarError{Err: err}
	}

	s.sendConfirmations(ctx, req, zoomLink, zoomPassword, zoomErr)

	return &Booking{
		CalendarLink: "https://calendar.google.com/calendar/event?eid=" + base64.StdEncoding.EncodeToString([]byte(eventId)),
		ZoomLink:     zoomLink,
		ZoomPassword: zoomPassword,
	}, nil
}

// createMeeting provisions a Zoom meeting for the slot. Best-effort: on any
// failure it falls back to the configured personal meeting room, or to no
// link at all. The error is returned only so it can be surfaced in the
// owner's notification email.
func (s *Service) createMeeting(ctx context.Context, req Request, interval availability.Interval) (link string, password string, zoomErr error) {
	topic := req.Topic
	if topic == "" {
		topic = "Discussion"
	}
	meeting, err := s.zoomClient.CreateMeeting(ctx, zoom.MeetingRequest{
		Topic:           fmt.Sprintf("Call with %s - %s", req.Name, topic),
		StartTime:       interval.Start,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		log.Errorf("error creating Zoom meeting: %v", err)
		if s.zoomCfg.PersonalMeetingId != "" {
			link = zoom.PersonalMeetingURL(s.zoomCfg.PersonalMeetingId)
			password = s.zoomCfg.MeetingPassword
			log.Infof("using fallback personal Zoom link: %s", link)
		}
		return link, password, err
	}
	return meeting.JoinURL, meeting.Password, nil
}

// sendConfirmations emails both parties. Failures are logged but do not roll
// back the booking: the calendar entry already exists.
func (s *Service) sendConfirmations(ctx context.Context, req Request, zoomLink, zoomPassword string, zoomErr error) {
	data := confirmationData{
		Name:          req.Name,
		Email:         req.Email,
		FormattedDate: formatDay(req.Day),
		TimeLabel:     req.SlotLabel,
		Duration:      formatDuration(req.DurationMinutes),
		Topic:         topicOrDefault(req.Topic),
		ZoomLink:      zoomLink,
		ZoomPassword:  zoomPassword,
		OwnerName:     s.owner.Name,
	}
	if zoomErr != nil {
		data.ZoomError = zoomErr.Error()
	}

	userHTML, err := renderTemplate(userConfirmationTmpl, data)
	if err != nil {
		log.Errorf("failed to render confirmation email: %v", err)
	} else {
		err = s.userSender.Send(ctx, mailer.Message{
			To:      req.Email,
			Subject: fmt.Sprintf("Call Scheduled: %s at %s", data.FormattedDate, req.SlotLabel),
			HTML:    userHTML,
		})
		if err != nil {
			log.Errorf("failed to send confirmation email to %s: %v", req.Email, err)
		}
	}

	ownerHTML, err := renderTemplate(ownerNotificationTmpl, data)
	if err != nil {
		log.Errorf("failed to render notification email: %v", err)
		return
	}
	err = s.ownerSender.Send(ctx, mailer.Message{
		To:      s.owner.Address,
		Subject: "New Call Scheduled: " + req.Name,
		HTML:    ownerHTML,
	})
	if err != nil {
		log.Errorf("failed to send notification email: %v", err)
	}
}

func topicOrDefault(topic string) string {
	if topic == "" {
		return "Not specified"
	}
	return topic
}
