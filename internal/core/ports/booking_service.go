package ports

import (
	"context"
	"time"

	"github.com/agendly/booking-system/internal/core/domain"
)

// AppointmentView is a single appointment as seen by its requester, with the
// computed lifecycle flags the clients render.
type AppointmentView struct {
	ID          uint
	ScheduledAt time.Time
	CanceledAt  *time.Time
	Past        bool
	Cancelable  bool
	Provider    UserSummary
}

// UserSummary is the display subset of a user embedded in other payloads.
type UserSummary struct {
	ID        uint
	Name      string
	Email     string
	AvatarURL string
}

// AppointmentPage is one page of a requester's appointment list.
type AppointmentPage struct {
	Items []AppointmentView
	Total int64
	Page  int
}

// BookingService gates appointment creation and cancellation against the
// business rules and performs their side effects.
type BookingService interface {
	Create(ctx context.Context, requesterID, providerID uint, requestedAt time.Time) (*domain.Appointment, error)
	Cancel(ctx context.Context, appointmentID, requesterID uint) (*domain.Appointment, error)
	List(ctx context.Context, requesterID uint, page int) (*AppointmentPage, error)
}
