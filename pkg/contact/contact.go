package contact

// Request is a validated contact-form submission.
type Request struct {
	Name    string
	Email   string
	Subject string
	Message string
}
