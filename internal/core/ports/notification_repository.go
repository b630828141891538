package ports

import (
	"context"

	"github.com/agendly/booking-system/internal/core/domain"
)

// NotificationRepository handles the append-only notification log.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	// ListByRecipient returns the recipient's notifications, newest first,
	// capped at limit.
	ListByRecipient(ctx context.Context, recipientID uint, limit int) ([]*domain.Notification, error)
	// MarkRead flips read to true and returns the updated notification.
	// Marking an already-read notification is a no-op that still succeeds.
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}
