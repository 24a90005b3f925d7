package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Scheduling
	r.HandleFunc("/api/available-times", deps.AvailabilityHandler.GetAvailableTimes).Methods("POST")
	r.HandleFunc("/api/schedule", deps.ScheduleHandler.ScheduleCall).Methods("POST")

	// Contact form
	r.HandleFunc("/api/contact", deps.ContactHandler.SubmitMessage).Methods("POST")
}
