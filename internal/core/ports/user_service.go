package ports

import (
	"context"

	"github.com/agendly/booking-system/internal/core/domain"
)

// UpdateProfileInput carries the optional profile changes for a user. Empty
// fields are left untouched. Changing the password requires OldPassword; the
// confirmation match is enforced at the request schema.
type UpdateProfileInput struct {
	Name        string
	Email       string
	AvatarURL   string
	OldPassword string
	Password    string
}

// UserService implements account registration and profile updates.
type UserService interface {
	// Register creates an account; provider marks it as able to receive
	// bookings.
	Register(ctx context.Context, name, email, password string, provider bool) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*domain.User, error)
}
