package ports

import (
	"context"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Role defaults
// to Patient when empty.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

type AuthService interface {
	// Register creates a new account. Registration never issues a token.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)

	// Login verifies credentials and returns a signed session token. Unknown
	// email and wrong password both yield domain.ErrInvalidCredentials so the
	// response cannot be used to enumerate accounts.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
