package service

import (
	"context"
	"fmt"
	"time"

	"github.com/agendly/booking-system/internal/core/domain"
	"github.com/agendly/booking-system/internal/core/ports"
)

// ScheduleService builds the provider's daily agenda.
type ScheduleService struct {
	users        ports.UserRepository
	appointments ports.AppointmentRepository
}

func NewScheduleService(users ports.UserRepository, appointments ports.AppointmentRepository) *ScheduleService {
	return &ScheduleService{users: users, appointments: appointments}
}

// DailySchedule returns the provider's active appointments for the calendar
// day containing day (UTC), ascending by time. Non-providers are rejected
// with ErrNotProvider; the provider flag is mutable, so the check always hits
// the store instead of trusting token claims.
func (s *ScheduleService) DailySchedule(ctx context.Context, providerID uint, day time.Time) ([]*domain.Appointment, error) {
	if _, err := s.users.FindProvider(ctx, providerID); err != nil {
		return nil, domain.ErrNotProvider
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Nanosecond)

	appts, err := s.appointments.ListProviderDay(ctx, providerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily schedule: %w", err)
	}
	return appts, nil
}
