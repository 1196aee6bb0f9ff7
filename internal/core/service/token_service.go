package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

// Revoker is the optional denylist consulted during verification. A nil
// Revoker keeps tokens fully stateless: once issued, a token is honored
// until expiry regardless of later account changes.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// sessionClaims is the JWT payload: user identity plus role, with the
// registered ID claim carrying a per-token UUID used for revocation.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID int         `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// TokenService issues and verifies HS256-signed session tokens.
type TokenService struct {
	secret  []byte
	ttl     time.Duration
	revoker Revoker
}

// NewTokenService builds a TokenService. ttl defaults to one hour when
// non-positive. revoker may be nil.
func NewTokenService(secret string, ttl time.Duration, revoker Revoker) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, revoker: revoker}
}

// Issue signs a token embedding the user's ID and role. The role claim is
// fixed at issuance: a later role change is not reflected until the token
// expires.
func (s *TokenService) Issue(_ context.Context, userID int, role domain.Role) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
		Role:   role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and, when a revoker is configured, the
// denylist. Returns domain.ErrTokenExpired, domain.ErrTokenRevoked, or
// domain.ErrTokenInvalid on failure.
func (s *TokenService) Verify(ctx context.Context, token string) (*ports.TokenClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid || !claims.Role.Valid() {
		return nil, domain.ErrTokenInvalid
	}

	if s.revoker != nil && claims.ID != "" {
		revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, domain.ErrTokenRevoked
		}
	}

	return &ports.TokenClaims{UserID: claims.UserID, Role: claims.Role}, nil
}

// Revoke denylists the token for its remaining lifetime. A no-op when no
// revoker is configured.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	if s.revoker == nil {
		return nil
	}

	claims := &sessionClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil // already dead, nothing to denylist
		}
		return domain.ErrTokenInvalid
	}

	ttl := s.ttl
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return s.revoker.Revoke(ctx, claims.ID, ttl)
}
