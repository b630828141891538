package ports

import (
	"context"
	"time"

	"github.com/agendly/booking-system/internal/core/domain"
)

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	// Create inserts a new active appointment. The store enforces at most one
	// active appointment per (provider_id, scheduled_at); a violation surfaces
	// as ErrSlotUnavailable.
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)

	// FindByID loads an appointment with requester and provider display data.
	FindByID(ctx context.Context, id uint) (*domain.Appointment, error)

	// FindActiveSlot returns the active appointment occupying the given
	// provider slot, or ErrAppointmentNotFound when the slot is free.
	FindActiveSlot(ctx context.Context, providerID uint, slot time.Time) (*domain.Appointment, error)

	// ListByRequester returns one page of the requester's active appointments
	// ordered by scheduled time ascending, plus the total count.
	ListByRequester(ctx context.Context, requesterID uint, page, perPage int) ([]*domain.Appointment, int64, error)

	// ListProviderDay returns the provider's active appointments with
	// scheduled_at in [from, to], ordered ascending.
	ListProviderDay(ctx context.Context, providerID uint, from, to time.Time) ([]*domain.Appointment, error)

	// MarkCanceled sets canceled_at on a still-active appointment. When the
	// appointment does not exist or was already canceled it returns
	// ErrAppointmentNotFound, making double cancellation a no-op failure.
	MarkCanceled(ctx context.Context, id uint, at time.Time) error
}
