package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/agendly/booking-system/internal/core/domain"
)

func TestNotificationListRejectsNonProvider(t *testing.T) {
	users := newStubUserRepo()
	plain := users.add(domain.User{Name: "Dana Cole", Email: "dana@example.com"})
	service := NewNotificationService(users, newStubNotificationRepo())

	_, err := service.List(context.Background(), plain.ID)
	if !errors.Is(err, domain.ErrNotProvider) {
		t.Errorf("error = %v, want ErrNotProvider", err)
	}
}

func TestNotificationListNewestFirstCapped(t *testing.T) {
	users := newStubUserRepo()
	provider := users.add(domain.User{Name: "Sam Barber", Email: "sam@example.com", Provider: true})
	notifs := newStubNotificationRepo()
	service := NewNotificationService(users, notifs)

	base := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < notificationFeedLimit+5; i++ {
		if _, err := notifs.Create(context.Background(), &domain.Notification{
			RecipientID: provider.ID,
			Content:     fmt.Sprintf("booking %d", i),
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	got, err := service.List(context.Background(), provider.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != notificationFeedLimit {
		t.Fatalf("got %d notifications, want cap of %d", len(got), notificationFeedLimit)
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("feed not newest first at index %d", i)
		}
	}
}

func TestNotificationMarkRead(t *testing.T) {
	users := newStubUserRepo()
	provider := users.add(domain.User{Name: "Sam Barber", Email: "sam@example.com", Provider: true})
	notifs := newStubNotificationRepo()
	service := NewNotificationService(users, notifs)

	created, err := notifs.Create(context.Background(), &domain.Notification{
		RecipientID: provider.ID,
		Content:     "booking",
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	read, err := service.MarkRead(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	if !read.Read {
		t.Error("notification must be read after MarkRead")
	}

	// Marking again is a no-op that still succeeds.
	again, err := service.MarkRead(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second MarkRead() error = %v", err)
	}
	if !again.Read {
		t.Error("notification must stay read")
	}
}

func TestNotificationMarkReadMissing(t *testing.T) {
	service := NewNotificationService(newStubUserRepo(), newStubNotificationRepo())

	_, err := service.MarkRead(context.Background(), "000000000000000000000000")
	if !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Errorf("error = %v, want ErrNotificationNotFound", err)
	}
}
