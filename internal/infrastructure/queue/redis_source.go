package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agendly/booking-system/internal/core/ports"
)

const popTimeout = 5 * time.Second

// RedisJobSource implements JobSource on the shared Redis list.
type RedisJobSource struct {
	client *redis.Client
}

func NewRedisJobSource(client *redis.Client) *RedisJobSource {
	return &RedisJobSource{client: client}
}

func (s *RedisJobSource) Pop(ctx context.Context) (*ports.CancellationMail, error) {
	res, err := s.client.BRPop(ctx, popTimeout, cancellationQueueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("pop mail job: %w", err)
	}

	// BRPop returns [key, value].
	var job ports.CancellationMail
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return nil, fmt.Errorf("decode mail job: %w", err)
	}
	return &job, nil
}

func (s *RedisJobSource) Requeue(ctx context.Context, job ports.CancellationMail) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal mail job: %w", err)
	}
	return s.client.LPush(ctx, cancellationQueueKey, payload).Err()
}

func (s *RedisJobSource) Depth(ctx context.Context) (int64, error) {
	return s.client.LLen(ctx, cancellationQueueKey).Result()
}
