package ports

import (
	"context"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
)

// TokenClaims is the identity information carried by a verified session token.
type TokenClaims struct {
	UserID int
	Role   domain.Role
}

// TokenVerifier checks a signed token and returns its claims. Implementations
// return domain.ErrTokenExpired for tokens past expiry, domain.ErrTokenRevoked
// for revoked tokens, and domain.ErrTokenInvalid for everything else that
// fails (bad signature, malformed, wrong algorithm).
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}

// TokenService issues and verifies session tokens. Tokens are stateless:
// unless a revoker is configured, an issued token stays valid for its full
// lifetime regardless of later changes to the account.
type TokenService interface {
	TokenVerifier
	Issue(ctx context.Context, userID int, role domain.Role) (string, error)
	Revoke(ctx context.Context, token string) error
}
