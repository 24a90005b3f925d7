package mailer

import (
	"context"

	"github.com/aharkous/portfolio-api/internal/config"
	"github.com/wneessen/go-mail"
)

// Message is a single outbound email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender delivers mail through an SMTP server as a fixed identity.
// The application runs two of these: one for owner-bound notifications and
// one for user-bound confirmations.
type SMTPSender struct {
	host     string
	port     int
	secure   bool
	identity config.EmailIdentity
}

func NewSMTPSender(cfg config.Email, identity config.EmailIdentity) *SMTPSender {
	return &SMTPSender{
		host:     cfg.Host,
		port:     cfg.Port,
		secure:   cfg.Secure,
		identity: identity,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if s.identity.Name != "" {
		if err := m.FromFormat(s.identity.Name, s.identity.Address); err != nil {
			return err
		}
	} else {
		if err := m.From(s.identity.Address); err != nil {
			return err
		}
	}
	if err := m.To(msg.To); err != nil {
		return err
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return err
		}
	}
	m.Subject(msg.Subject)

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBodyString(mail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	default:
		m.SetBodyString(mail.TypeTextPlain, msg.Text)
	}

	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.identity.Address),
		mail.WithPassword(s.identity.Password),
	}
	if s.secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, m)
}
