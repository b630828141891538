package ports

import (
	"context"
	"time"

	"github.com/agendly/booking-system/internal/core/domain"
)

// ScheduleService exposes the provider-facing daily agenda.
type ScheduleService interface {
	// DailySchedule returns the caller's active appointments for the given
	// day, ordered by time ascending. The caller must be a provider.
	DailySchedule(ctx context.Context, providerID uint, day time.Time) ([]*domain.Appointment, error)
}
