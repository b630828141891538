package ports

import (
	"context"

	"github.com/agendly/booking-system/internal/core/domain"
)

// NotificationService exposes the provider-facing notification feed.
type NotificationService interface {
	// List returns the caller's notifications, newest first, capped at 20.
	// The caller must be a provider.
	List(ctx context.Context, recipientID uint) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}
