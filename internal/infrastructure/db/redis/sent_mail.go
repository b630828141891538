package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sentTTL = 7 * 24 * time.Hour

// SentMailStore provides consumer-side delivery dedup backed by Redis.
// Key format: mailsent:<appointment_id>:<canceled_unix> — an appointment can
// only be canceled once, so the pair uniquely identifies one email.
type SentMailStore struct {
	client *redis.Client
}

// NewSentMailStore creates a SentMailStore wrapping the given Redis client.
func NewSentMailStore(client *redis.Client) *SentMailStore {
	return &SentMailStore{client: client}
}

// AlreadySent reports whether this cancellation email was already delivered.
func (s *SentMailStore) AlreadySent(ctx context.Context, appointmentID uint, canceledAt time.Time) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(appointmentID, canceledAt)).Result()
	if err != nil {
		return false, fmt.Errorf("sent-mail check: %w", err)
	}
	return n > 0, nil
}

// MarkSent records a successful delivery (expires after sentTTL).
func (s *SentMailStore) MarkSent(ctx context.Context, appointmentID uint, canceledAt time.Time) error {
	return s.client.Set(ctx, s.key(appointmentID, canceledAt), "1", sentTTL).Err()
}

func (s *SentMailStore) key(appointmentID uint, canceledAt time.Time) string {
	return fmt.Sprintf("mailsent:%d:%d", appointmentID, canceledAt.Unix())
}
