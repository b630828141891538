package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/agendly/booking-system/internal/api/metrics"
	"github.com/agendly/booking-system/internal/core/domain"
	"github.com/agendly/booking-system/internal/core/ports"
)

const listPageSize = 20

// notificationDateFormat renders the slot in the human-readable form embedded
// in provider notifications, e.g. "January 2 at 3:00 PM".
const notificationDateFormat = "January 2 at 3:04 PM"

// BookingService enforces the booking rules before touching the stores.
// Checks run in a fixed order and the first failure wins.
type BookingService struct {
	users         ports.UserRepository
	appointments  ports.AppointmentRepository
	notifications ports.NotificationRepository
	mail          ports.MailQueue
	log           zerolog.Logger
}

func NewBookingService(
	users ports.UserRepository,
	appointments ports.AppointmentRepository,
	notifications ports.NotificationRepository,
	mail ports.MailQueue,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		users:         users,
		appointments:  appointments,
		notifications: notifications,
		mail:          mail,
		log:           log,
	}
}

// Create books the provider's hour-slot containing requestedAt for the
// requester. The persisted time is always the truncated slot, never the raw
// requested value.
func (s *BookingService) Create(ctx context.Context, requesterID, providerID uint, requestedAt time.Time) (*domain.Appointment, error) {
	provider, err := s.users.FindProvider(ctx, providerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.BookingErrorsTotal.WithLabelValues("invalid_provider").Inc()
			return nil, domain.ErrInvalidProvider
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	if providerID == requesterID {
		metrics.BookingErrorsTotal.WithLabelValues("self_booking").Inc()
		return nil, domain.ErrSelfBooking
	}

	slot := domain.SlotFor(requestedAt)
	now := time.Now().UTC()
	if !slot.After(now) {
		metrics.BookingErrorsTotal.WithLabelValues("past_date").Inc()
		return nil, domain.ErrPastDate
	}

	// Advisory availability read. The unique index on
	// (provider_id, scheduled_at, active) remains the authority; a concurrent
	// winner still surfaces as ErrSlotUnavailable from Create below.
	if _, err := s.appointments.FindActiveSlot(ctx, providerID, slot); err == nil {
		metrics.BookingErrorsTotal.WithLabelValues("slot_taken").Inc()
		return nil, domain.ErrSlotUnavailable
	} else if !errors.Is(err, domain.ErrAppointmentNotFound) {
		return nil, fmt.Errorf("create appointment: check slot: %w", err)
	}

	created, err := s.appointments.Create(ctx, &domain.Appointment{
		RequesterID: requesterID,
		ProviderID:  providerID,
		ScheduledAt: slot,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			metrics.BookingErrorsTotal.WithLabelValues("slot_taken").Inc()
			return nil, domain.ErrSlotUnavailable
		}
		s.log.Error().Err(err).Uint("provider_id", providerID).Msg("failed to create appointment")
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.notifyProvider(ctx, created, provider)

	metrics.AppointmentsBookedTotal.Inc()
	s.log.Info().
		Uint("appointment_id", created.ID).
		Uint("requester_id", requesterID).
		Uint("provider_id", providerID).
		Time("slot", slot).
		Msg("appointment booked")

	return created, nil
}

// notifyProvider appends the booking notification to the provider's feed.
// A write failure must not undo the already-persisted appointment.
func (s *BookingService) notifyProvider(ctx context.Context, appt *domain.Appointment, provider *domain.User) {
	requester, err := s.users.FindByID(ctx, appt.RequesterID)
	if err != nil {
		s.log.Warn().Err(err).Uint("requester_id", appt.RequesterID).Msg("skipping notification, requester lookup failed")
		return
	}

	n := &domain.Notification{
		RecipientID: provider.ID,
		Content: fmt.Sprintf("New appointment booked by %s for %s",
			requester.Name, appt.ScheduledAt.Format(notificationDateFormat)),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.notifications.Create(ctx, n); err != nil {
		s.log.Warn().Err(err).Uint("provider_id", provider.ID).Msg("failed to write booking notification")
		return
	}
	metrics.NotificationsCreatedTotal.Inc()
}

// Cancel marks the appointment canceled and enqueues the cancellation email.
// Only the requester may cancel, and only up to CancelWindow before the slot.
func (s *BookingService) Cancel(ctx context.Context, appointmentID, requesterID uint) (*domain.Appointment, error) {
	appt, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if appt.RequesterID != requesterID {
		metrics.BookingErrorsTotal.WithLabelValues("not_owner").Inc()
		return nil, domain.ErrNotOwner
	}

	now := time.Now().UTC()
	if !appt.ScheduledAt.Add(-domain.CancelWindow).After(now) {
		metrics.BookingErrorsTotal.WithLabelValues("window_closed").Inc()
		return nil, domain.ErrCancelWindowClosed
	}

	// The conditional update refuses appointments that are already canceled,
	// so a lost race here cannot enqueue a second email.
	if err := s.appointments.MarkCanceled(ctx, appointmentID, now); err != nil {
		return nil, err
	}
	appt.CanceledAt = &now

	job := ports.CancellationMail{
		AppointmentID: appt.ID,
		ScheduledAt:   appt.ScheduledAt,
		CanceledAt:    now,
	}
	if appt.Provider != nil {
		job.ProviderName = appt.Provider.Name
		job.ProviderEmail = appt.Provider.Email
	}
	if appt.Requester != nil {
		job.RequesterName = appt.Requester.Name
		job.RequesterEmail = appt.Requester.Email
	}

	// The cancellation is committed; a queue failure is logged and left to
	// operators rather than rolled back.
	if err := s.mail.Enqueue(ctx, job); err != nil {
		s.log.Error().Err(err).Uint("appointment_id", appt.ID).Msg("failed to enqueue cancellation mail")
	} else {
		metrics.MailJobsEnqueuedTotal.Inc()
	}

	metrics.CancellationsTotal.Inc()
	s.log.Info().Uint("appointment_id", appt.ID).Time("slot", appt.ScheduledAt).Msg("appointment canceled")

	return appt, nil
}

// List returns one page of the requester's active appointments, oldest slot
// first, with the computed past/cancelable flags.
func (s *BookingService) List(ctx context.Context, requesterID uint, page int) (*ports.AppointmentPage, error) {
	if page < 1 {
		page = 1
	}

	appts, total, err := s.appointments.ListByRequester(ctx, requesterID, page, listPageSize)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	now := time.Now().UTC()
	items := make([]ports.AppointmentView, 0, len(appts))
	for _, a := range appts {
		view := ports.AppointmentView{
			ID:          a.ID,
			ScheduledAt: a.ScheduledAt,
			CanceledAt:  a.CanceledAt,
			Past:        a.Past(now),
			Cancelable:  a.Cancelable(now),
		}
		if a.Provider != nil {
			view.Provider = ports.UserSummary{
				ID:        a.Provider.ID,
				Name:      a.Provider.Name,
				Email:     a.Provider.Email,
				AvatarURL: a.Provider.AvatarURL,
			}
		}
		items = append(items, view)
	}

	return &ports.AppointmentPage{Items: items, Total: total, Page: page}, nil
}
