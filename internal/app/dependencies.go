package app

import (
	"github.com/aharkous/portfolio-api/internal/config"
	"github.com/aharkous/portfolio-api/internal/utils"
	"github.com/aharkous/portfolio-api/pkg/availability"
	"github.com/aharkous/portfolio-api/pkg/contact"
	"github.com/aharkous/portfolio-api/pkg/google"
	"github.com/aharkous/portfolio-api/pkg/mailer"
	"github.com/aharkous/portfolio-api/pkg/schedule"
	"github.com/aharkous/portfolio-api/pkg/zoom"
)

// Dependencies holds all clients, services, and handlers for the application.
type Dependencies struct {
	Calendar     google.Calendar
	ZoomClient   zoom.Client
	NotifySender mailer.Sender
	OwnerSender  mailer.Sender
	Clock        utils.Clock

	AvailabilityService *availability.Service
	AvailabilityHandler *availability.Handler

	ScheduleService *schedule.Service
	ScheduleHandler *schedule.Handler

	ContactService *contact.Service
	ContactHandler *contact.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Calendar = google.NewCalendar(cfg.Google)
	deps.ZoomClient = zoom.NewClient(cfg.Zoom)

	// Sender delivers owner-bound mail; Owner delivers user-bound mail so
	// replies land in the owner's inbox.
	deps.NotifySender = mailer.NewSMTPSender(cfg.Email, cfg.Email.Sender)
	deps.OwnerSender = mailer.NewSMTPSender(cfg.Email, cfg.Email.Owner)

	deps.Clock = &utils.SystemClock{}

	availCfg := availabilityConfig(cfg.Scheduling)
	deps.AvailabilityService = availability.NewService(availCfg, deps.Calendar, deps.Clock)
	deps.AvailabilityHandler = availability.NewHandler(deps.AvailabilityService, cfg.Scheduling.DefaultDurationMinutes)

	deps.ScheduleService = schedule.NewService(
		availCfg,
		deps.Calendar,
		deps.ZoomClient,
		cfg.Zoom,
		deps.OwnerSender,
		deps.NotifySender,
		cfg.Email.Owner,
	)
	deps.ScheduleHandler = schedule.NewHandler(deps.ScheduleService, cfg.Scheduling.DefaultDurationMinutes)

	deps.ContactService = contact.NewService(deps.NotifySender, deps.OwnerSender, cfg.Email.Owner)
	deps.ContactHandler = contact.NewHandler(deps.ContactService)

	return deps
}

func availabilityConfig(cfg config.Scheduling) availability.Config {
	if len(cfg.Slots) == 0 {
		return availability.DefaultConfig()
	}
	slots := make([]availability.Slot, 0, len(cfg.Slots))
	for _, s := range cfg.Slots {
		slots = append(slots, availability.Slot{Hour: s.Hour, Minute: s.Minute})
	}
	return availability.Config{
		Slots: slots,
		WorkingHours: availability.WorkingHours{
			StartHour: cfg.WorkingHoursStart,
			EndHour:   cfg.WorkingHoursEnd,
		},
	}
}
