package contact

import (
	"encoding/json"
	"net/http"

	"github.com/aharkous/portfolio-api/internal/rest"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type contactResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	ConfirmationSent bool   `json:"confirmationSent"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Missing required fields", "")
		return
	}

	err := h.service.Submit(r.Context(), Request{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		log.Errorf("contact form error: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "Failed to send message", err.Error())
		return
	}

	rest.WriteJSON(w, http.StatusOK, contactResponse{
		Success:          true,
		Message:          "Email sent successfully",
		ConfirmationSent: true,
	})
}
