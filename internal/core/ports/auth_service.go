package ports

import (
	"context"

	"github.com/agendly/booking-system/internal/core/domain"
)

type AuthService interface {
	// Login verifies the credentials and returns a signed session token plus
	// the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
