package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aharkous/portfolio-api/internal/rest"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service         *Service
	defaultDuration int
	validate        *validator.Validate
}

type scheduleRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Duration string `json:"duration"`
	Topic    string `json:"topic"`
}

type scheduleResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	CalendarLink string `json:"calendarLink"`
	ZoomLink     string `json:"zoomLink"`
	ZoomPassword string `json:"zoomPassword"`
}

type calendarErrorResponse struct {
	Error         string `json:"error"`
	Details       string `json:"details"`
	CalendarError bool   `json:"calendarError"`
}

func NewHandler(service *Service, defaultDuration int) *Handler {
	return &Handler{
		service:         service,
		defaultDuration: defaultDuration,
		validate:        validator.New(),
	}
}

func (h *Handler) ScheduleCall(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Missing required fields", "")
		return
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		if t, rfcErr := time.Parse(time.RFC3339, req.Date); rfcErr == nil {
			day = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		} else {
			rest.WriteError(w, http.StatusBadRequest, "Invalid date format", "'date' must be an ISO date, e.g. 2025-03-14")
			return
		}
	}

	durationMinutes := h.defaultDuration
	if req.Duration != "" {
		durationMinutes, err = strconv.Atoi(req.Duration)
		if err != nil || durationMinutes <= 0 {
			rest.WriteError(w, http.StatusBadRequest, "Invalid duration", "'duration' must be a positive number of minutes")
			return
		}
	}

	booking, err := h.service.Schedule(r.Context(), Request{
		Name:            req.Name,
		Email:           req.Email,
		Day:             day,
		SlotLabel:       req.Time,
		DurationMinutes: durationMinutes,
		Topic:           req.Topic,
	})
	if err != nil {
		var calendarErr *CalendarError
		switch {
		case errors.Is(err, ErrInvalidSlot):
			rest.WriteError(w, http.StatusBadRequest, "Invalid time slot", err.Error())
		case errors.Is(err, ErrConflict):
			rest.WriteError(w, http.StatusConflict, "Time slot not available",
				"This time slot is already booked or conflicts with another event.")
		case errors.As(err, &calendarErr):
			log.Errorf("Google Calendar error: %v", calendarErr.Err)
			rest.WriteJSON(w, http.StatusInternalServerError, calendarErrorResponse{
				Error:         "Failed to schedule in calendar",
				Details:       calendarErr.Err.Error(),
				CalendarError: true,
			})
		default:
			log.Errorf("schedule call error: %v", err)
			rest.WriteError(w, http.StatusInternalServerError, "Failed to schedule call", err.Error())
		}
		return
	}

	rest.WriteJSON(w, http.StatusOK, scheduleResponse{
		Success:      true,
		Message:      "Call scheduled successfully",
		CalendarLink: booking.CalendarLink,
		ZoomLink:     booking.ZoomLink,
		ZoomPassword: booking.ZoomPassword,
	})
}
