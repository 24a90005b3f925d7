package availability

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

type availableTimesRequest struct {
	Date     string `json:"date" validate:"required"`
	Duration string `json:"duration"`
}

type availableTimesResponse struct {
	AvailableTimes  []string `json:"availableTimes"`
	MeetingDuration int      `json:"meetingDuration"`
}

// failOpenResponse is returned with HTTP 200 when the upstream calendar
// lookup fails: every slot is shown rather than none, so the form stays
// usable. The later booking step re-checks for conflicts.
type failOpenResponse struct {
	AvailableTimes []string `json:"availableTimes"`
	Error          string   `json:"error"`
	Details        string   `json:"details"`
}

func NewHandler(service *Service, defaultDuration int) *Handler {
	return &Handler{
		service:         service,
		defaultDuration: defaultDuration,
		validate:        validator.New(),
	}
}

func (h *Handler) GetAvailableTimes(w http.ResponseWriter, r *http.Request) {
	var req availableTimesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Date is required", "")
		return
	}

	day, err := parseDay(req.Date)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid date format", "'date' must be an ISO date, e.g. 2025-03-14")
		return
	}

	durationMinutes := h.defaultDuration
	if req.Duration != "" {
		durationMinutes, err = strconv.Atoi(req.Duration)
		if err != nil || durationMinutes <= 0 {
			rest.WriteError(w, http.StatusBadRequest, "Invalid duration", "'duration' must be a positive number of minutes")
			return
		}
	}

	availableTimes, err := h.service.AvailableTimes(r.Context(), day, durationMinutes)
	if err != nil {
		if errors.Is(err, ErrPastDate) {
			rest.WriteError(w, http.StatusBadRequest, "Date must not be in the past", "")
			return
		}
		log.Errorf("error checking available times: %v", err)
		rest.WriteJSON(w, http.StatusOK, failOpenResponse{
			AvailableTimes: h.service.SlotLabels(),
			Error:          "Failed to check availability, showing all time slots",
			Details:        err.Error(),
		})
		return
	}

	rest.WriteJSON(w, http.StatusOK, availableTimesResponse{
		AvailableTimes:  availableTimes,
		MeetingDuration: durationMinutes,
	})
}

// parseDay accepts a plain ISO date or a full RFC3339 timestamp; the
// time-of-day part is ignored.
func parseDay(value string) (time.Time, error) {
	if day, err := time.Parse("2006-01-02", value); err == nil {
		return day, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
}
