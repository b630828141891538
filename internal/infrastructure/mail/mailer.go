package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/agendly/booking-system/internal/core/ports"
)

const mailTimeFormat = "January 2, 2006 at 3:04 PM"

// SMTPMailer sends cancellation emails over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendCancellation mails the provider that a booking was canceled. gomail has
// no context support; cancellation is bounded by the SMTP dial timeout.
func (m *SMTPMailer) SendCancellation(_ context.Context, job ports.CancellationMail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetAddressHeader("To", job.ProviderEmail, job.ProviderName)
	msg.SetHeader("Subject", "Appointment canceled")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nThe appointment booked by %s for %s was canceled on %s.\nThe slot is available again.\n",
		job.ProviderName,
		job.RequesterName,
		job.ScheduledAt.Format(mailTimeFormat),
		job.CanceledAt.Format(mailTimeFormat),
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send cancellation mail: %w", err)
	}
	return nil
}
