package ports

import (
	"context"
	"time"
)

// CancellationMail is the job payload handed to the mail pipeline when an
// appointment is canceled. It carries everything the out-of-process worker
// needs to render and address the email, so the worker never reads the
// database.
type CancellationMail struct {
	AppointmentID  uint      `json:"appointment_id"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	CanceledAt     time.Time `json:"canceled_at"`
	ProviderName   string    `json:"provider_name"`
	ProviderEmail  string    `json:"provider_email"`
	RequesterName  string    `json:"requester_name"`
	RequesterEmail string    `json:"requester_email"`
}

// MailQueue is the producer side of the cancellation-mail pipeline.
// Delivery is asynchronous and at-least-once; enqueue failures must never
// roll back a committed cancellation.
type MailQueue interface {
	Enqueue(ctx context.Context, job CancellationMail) error
}
