package handler

import (
	"time"

	"github.com/agendly/booking-system/internal/core/domain"
	"github.com/agendly/booking-system/internal/core/ports"
)

// --- Domain / service results → HTTP responses ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Provider:  u.Provider,
		AvatarURL: u.AvatarURL,
	}
}

func toUserSummary(u *domain.User) *userSummaryResponse {
	if u == nil {
		return nil
	}
	return &userSummaryResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
	}
}

func toAppointmentResponse(a *domain.Appointment, now time.Time) appointmentResponse {
	return appointmentResponse{
		ID:          a.ID,
		ScheduledAt: a.ScheduledAt.UTC(),
		CanceledAt:  a.CanceledAt,
		Past:        a.Past(now),
		Cancelable:  a.Cancelable(now),
		Provider:    toUserSummary(a.Provider),
		Requester:   toUserSummary(a.Requester),
	}
}

func toListResponse(page *ports.AppointmentPage, limit int) listAppointmentsResponse {
	items := make([]appointmentResponse, 0, len(page.Items))
	for _, v := range page.Items {
		item := appointmentResponse{
			ID:          v.ID,
			ScheduledAt: v.ScheduledAt.UTC(),
			CanceledAt:  v.CanceledAt,
			Past:        v.Past,
			Cancelable:  v.Cancelable,
			Provider: &userSummaryResponse{
				ID:        v.Provider.ID,
				Name:      v.Provider.Name,
				Email:     v.Provider.Email,
				AvatarURL: v.Provider.AvatarURL,
			},
		}
		items = append(items, item)
	}
	return listAppointmentsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total: page.Total,
			Page:  page.Page,
			Limit: limit,
		},
	}
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Content:     n.Content,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt.UTC(),
	}
}
