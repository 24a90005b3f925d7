package contact

import (
	"context"
	"fmt"

	"github.com/aharkous/portfolio-api/internal/config"
	"github.com/aharkous/portfolio-api/pkg/mailer"
)

// Service delivers a contact-form submission as two emails: a notification
// to the site owner (reply-to set to the sender) and an acknowledgment back
// to the sender. Email is the sole deliverable here, so any failure is the
// request's failure.
type Service struct {
	notifySender mailer.Sender
	ackSender    mailer.Sender
	owner        config.EmailIdentity
}

func NewService(notifySender mailer.Sender, ackSender mailer.Sender, owner config.EmailIdentity) *Service {
	return &Service{
		notifySender: notifySender,
		ackSender:    ackSender,
		owner:        owner,
	}
}

func (s *Service) Submit(ctx context.Context, req Request) error {
	data := emailData{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		OwnerName: s.owner.Name,
	}

	notificationHTML, err := renderTemplate(ownerNotificationTmpl, data)
	if err != nil {
		return fmt.Errorf("failed to render notification email: %w", err)
	}
	err = s.notifySender.Send(ctx, mailer.Message{
		To:      s.owner.Address,
		ReplyTo: req.Email,
		Subject: "Contact Form: " + req.Subject,
		Text:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage: %s", req.Name, req.Email, req.Message),
		HTML:    notificationHTML,
	})
	if err != nil {
		return fmt.Errorf("failed to deliver notification email: %w", err)
	}

	ackHTML, err := renderTemplate(acknowledgmentTmpl, data)
	if err != nil {
		return fmt.Errorf("failed to render acknowledgment email: %w", err)
	}
	subject := "Thank you for contacting"
	if s.owner.Name != "" {
		subject += " " + s.owner.Name
	} else {
		subject += " me"
	}
	err = s.ackSender.Send(ctx, mailer.Message{
		To:      req.Email,
		Subject: subject,
		HTML:    ackHTML,
	})
	if err != nil {
		return fmt.Errorf("failed to deliver acknowledgment email: %w", err)
	}

	return nil
}
