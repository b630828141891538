package service

import (
	"context"
	"fmt"

	"github.com/agendly/booking-system/internal/core/domain"
	"github.com/agendly/booking-system/internal/core/ports"
)

const notificationFeedLimit = 20

// NotificationService exposes the provider notification feed.
type NotificationService struct {
	users         ports.UserRepository
	notifications ports.NotificationRepository
}

func NewNotificationService(users ports.UserRepository, notifications ports.NotificationRepository) *NotificationService {
	return &NotificationService{users: users, notifications: notifications}
}

// List returns the caller's notifications, newest first. Only providers have
// a feed to read.
func (s *NotificationService) List(ctx context.Context, recipientID uint) ([]*domain.Notification, error) {
	if _, err := s.users.FindProvider(ctx, recipientID); err != nil {
		return nil, domain.ErrNotProvider
	}

	items, err := s.notifications.ListByRecipient(ctx, recipientID, notificationFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

// MarkRead flips the notification to read. Repeating the call on an
// already-read notification succeeds and returns the same document.
func (s *NotificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	return s.notifications.MarkRead(ctx, id)
}
