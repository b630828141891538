package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/agendly/booking-system/internal/core/domain"
)

func TestDailyScheduleRejectsNonProvider(t *testing.T) {
	users := newStubUserRepo()
	plain := users.add(domain.User{Name: "Dana Cole", Email: "dana@example.com"})
	service := NewScheduleService(users, newStubAppointmentRepo(users))

	_, err := service.DailySchedule(context.Background(), plain.ID, time.Now().UTC())
	if !errors.Is(err, domain.ErrNotProvider) {
		t.Errorf("error = %v, want ErrNotProvider", err)
	}
}

func TestDailyScheduleFiltersDayAndOrders(t *testing.T) {
	users := newStubUserRepo()
	requester := users.add(domain.User{Name: "Dana Cole", Email: "dana@example.com"})
	provider := users.add(domain.User{Name: "Sam Barber", Email: "sam@example.com", Provider: true})
	appts := newStubAppointmentRepo(users)
	service := NewScheduleService(users, appts)

	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	seed := func(at time.Time) *domain.Appointment {
		a, err := appts.Create(context.Background(), &domain.Appointment{
			RequesterID: requester.ID,
			ProviderID:  provider.ID,
			ScheduledAt: at,
		})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		return a
	}

	seed(day.Add(15 * time.Hour)) // 15:00 on the day
	seed(day.Add(9 * time.Hour))  // 09:00 on the day
	seed(day.Add(-2 * time.Hour)) // previous day
	seed(day.Add(26 * time.Hour)) // next day
	canceled := seed(day.Add(11 * time.Hour))
	if err := appts.MarkCanceled(context.Background(), canceled.ID, time.Now().UTC()); err != nil {
		t.Fatalf("cancel seed failed: %v", err)
	}

	// Any time inside the day selects the whole day.
	got, err := service.DailySchedule(context.Background(), provider.ID, day.Add(13*time.Hour+30*time.Minute))
	if err != nil {
		t.Fatalf("DailySchedule() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d appointments, want 2", len(got))
	}
	if got[0].ScheduledAt.Hour() != 9 || got[1].ScheduledAt.Hour() != 15 {
		t.Errorf("appointments out of order: %v, %v", got[0].ScheduledAt, got[1].ScheduledAt)
	}
	if got[0].Requester == nil || got[0].Requester.Name != requester.Name {
		t.Error("schedule entries must carry requester display data")
	}
}

func TestDailyScheduleEmptyDay(t *testing.T) {
	users := newStubUserRepo()
	provider := users.add(domain.User{Name: "Sam Barber", Email: "sam@example.com", Provider: true})
	service := NewScheduleService(users, newStubAppointmentRepo(users))

	got, err := service.DailySchedule(context.Background(), provider.ID, time.Now().UTC())
	if err != nil {
		t.Fatalf("DailySchedule() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected an empty schedule, got %d entries", len(got))
	}
}
