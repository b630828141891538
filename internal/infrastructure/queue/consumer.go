package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agendly/booking-system/internal/api/metrics"
	"github.com/agendly/booking-system/internal/core/ports"
)

// retryDelay throttles the loop after a failed delivery so a broken SMTP
// relay does not spin the worker hot against the queue.
const retryDelay = time.Second

// MailSender delivers a single cancellation email.
type MailSender interface {
	SendCancellation(ctx context.Context, job ports.CancellationMail) error
}

// SentStore is the consumer-side dedup: delivery is at-least-once, so the
// worker checks whether this exact cancellation was already mailed before
// sending, and marks it only after a successful send.
type SentStore interface {
	AlreadySent(ctx context.Context, appointmentID uint, canceledAt time.Time) (bool, error)
	MarkSent(ctx context.Context, appointmentID uint, canceledAt time.Time) error
}

// JobSource abstracts the blocking queue so the consumer can be driven from
// an in-memory source in tests.
type JobSource interface {
	// Pop blocks for a bounded time and returns the next job, or (nil, nil)
	// when the wait timed out with an empty queue.
	Pop(ctx context.Context) (*ports.CancellationMail, error)
	// Requeue puts a job back for another delivery attempt.
	Requeue(ctx context.Context, job ports.CancellationMail) error
	// Depth returns the number of jobs currently waiting.
	Depth(ctx context.Context) (int64, error)
}

// MailConsumer drains the cancellation-mail queue and hands each job to the
// sender, with at-least-once semantics: failed sends are requeued, duplicate
// jobs are skipped via the SentStore.
type MailConsumer struct {
	source JobSource
	sender MailSender
	sent   SentStore
	log    zerolog.Logger
}

func NewMailConsumer(source JobSource, sender MailSender, sent SentStore, log zerolog.Logger) *MailConsumer {
	return &MailConsumer{source: source, sender: sender, sent: sent, log: log}
}

// Run consumes jobs until ctx is cancelled.
func (c *MailConsumer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job, err := c.source.Pop(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.log.Error().Err(err).Msg("failed to pop mail job")
			time.Sleep(retryDelay)
			continue
		}

		if depth, err := c.source.Depth(ctx); err == nil {
			metrics.MailQueueDepth.Set(float64(depth))
		}

		if job == nil {
			continue
		}

		if err := c.process(ctx, *job); err != nil {
			time.Sleep(retryDelay)
		}
	}
}

func (c *MailConsumer) process(ctx context.Context, job ports.CancellationMail) error {
	dup, err := c.sent.AlreadySent(ctx, job.AppointmentID, job.CanceledAt)
	if err != nil {
		c.log.Warn().Err(err).Uint("appointment_id", job.AppointmentID).Msg("dedup check failed, sending anyway")
	} else if dup {
		metrics.MailJobsProcessedTotal.WithLabelValues("duplicate").Inc()
		c.log.Debug().Uint("appointment_id", job.AppointmentID).Msg("duplicate mail job skipped")
		return nil
	}

	start := time.Now()
	if err := c.sender.SendCancellation(ctx, job); err != nil {
		metrics.MailJobsProcessedTotal.WithLabelValues("retried").Inc()
		c.log.Error().Err(err).Uint("appointment_id", job.AppointmentID).Msg("cancellation mail failed, requeueing")
		if reqErr := c.source.Requeue(ctx, job); reqErr != nil {
			c.log.Error().Err(reqErr).Uint("appointment_id", job.AppointmentID).Msg("failed to requeue mail job")
		}
		return err
	}
	metrics.MailSendDuration.Observe(time.Since(start).Seconds())

	if err := c.sent.MarkSent(ctx, job.AppointmentID, job.CanceledAt); err != nil {
		c.log.Warn().Err(err).Uint("appointment_id", job.AppointmentID).Msg("failed to mark mail as sent")
	}

	metrics.MailJobsProcessedTotal.WithLabelValues("sent").Inc()
	c.log.Info().
		Uint("appointment_id", job.AppointmentID).
		Str("to", job.ProviderEmail).
		Msg("cancellation mail sent")
	return nil
}
