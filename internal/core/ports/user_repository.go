package ports

import (
	"context"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// Create stores a new user and returns it with the assigned ID. A
	// duplicate email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
