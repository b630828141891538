package handler

import "time"

type createAppointmentRequest struct {
	ProviderID uint      `json:"provider_id" validate:"required"`
	Date       time.Time `json:"date"        validate:"required"`
}

// userSummaryResponse is the display subset of a user embedded in other
// payloads.
type userSummaryResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type appointmentResponse struct {
	ID          uint                 `json:"id"`
	ScheduledAt time.Time            `json:"scheduled_at"`
	CanceledAt  *time.Time           `json:"canceled_at,omitempty"`
	Past        bool                 `json:"past"`
	Cancelable  bool                 `json:"cancelable"`
	Provider    *userSummaryResponse `json:"provider,omitempty"`
	Requester   *userSummaryResponse `json:"requester,omitempty"`
}

type paginationResponse struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

type listAppointmentsResponse struct {
	Data       []appointmentResponse `json:"data"`
	Pagination paginationResponse    `json:"pagination"`
}

type scheduleResponse struct {
	Date string                `json:"date"`
	Data []appointmentResponse `json:"data"`
}

type notificationResponse struct {
	ID          string    `json:"id"`
	RecipientID uint      `json:"recipient_id"`
	Content     string    `json:"content"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}
