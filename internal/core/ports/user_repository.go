package ports

import (
	"context"

	"github.com/agendly/booking-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create persists a new user. A duplicate email surfaces as ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindProvider resolves id only when the user exists with provider = true.
	FindProvider(ctx context.Context, id uint) (*domain.User, error)
	// Update persists changed profile fields. A duplicate email surfaces as
	// ErrEmailTaken.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
