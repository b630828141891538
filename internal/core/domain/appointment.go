package domain

import "time"

// CancelWindow is the minimum lead time before the scheduled slot during
// which a booking may still be canceled.
const CancelWindow = 2 * time.Hour

// Appointment is the core aggregate: one hour-long slot of a provider's time
// booked by a requester. It is mutated exactly once — cancellation sets
// CanceledAt — and never deleted.
type Appointment struct {
	ID          uint       `json:"id"`
	RequesterID uint       `json:"requester_id"`
	ProviderID  uint       `json:"provider_id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	CanceledAt  *time.Time `json:"canceled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	// Display data, populated when the repository loads related users.
	Requester *User `json:"requester,omitempty"`
	Provider  *User `json:"provider,omitempty"`
}

// SlotFor truncates a requested time to the start of its hour in UTC.
// Slot identity is exact truncated-hour equality: two requests within the
// same clock hour collide regardless of minute or second.
func SlotFor(t time.Time) time.Time {
	return t.UTC().Truncate(time.Hour)
}

// Past reports whether the scheduled slot has already started.
func (a *Appointment) Past(now time.Time) bool {
	return !a.ScheduledAt.After(now)
}

// Cancelable reports whether the appointment can still be canceled: it must
// be active and now must be strictly before scheduled_at minus CancelWindow.
func (a *Appointment) Cancelable(now time.Time) bool {
	return a.CanceledAt == nil && now.Before(a.ScheduledAt.Add(-CancelWindow))
}
