package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/agendly/booking-system/internal/core/ports"
)

// cancellationQueueKey is the Redis list shared by the API (producer) and the
// mail worker (consumer).
const cancellationQueueKey = "mailqueue:cancellations"

// MailProducer pushes cancellation-mail jobs onto the Redis queue.
type MailProducer struct {
	client *redis.Client
}

func NewMailProducer(client *redis.Client) *MailProducer {
	return &MailProducer{client: client}
}

// Enqueue serializes the job and pushes it for asynchronous delivery.
func (p *MailProducer) Enqueue(ctx context.Context, job ports.CancellationMail) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal mail job: %w", err)
	}
	if err := p.client.LPush(ctx, cancellationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("enqueue mail job: %w", err)
	}
	return nil
}
