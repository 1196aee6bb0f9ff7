package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
)

type stubRevoker struct {
	revoked map[string]bool
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]bool)}
}

func (r *stubRevoker) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	r.revoked[tokenID] = true
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return r.revoked[tokenID], nil
}

func TestTokenService_IssueVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, nil)

	token, err := svc.Issue(context.Background(), 42, domain.RoleDoctor)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Role != domain.RoleDoctor {
		t.Fatalf("expected role Doctor, got %s", claims.Role)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, nil)

	// Sign a token that expired an hour ago with the right key: the
	// signature is valid, only the expiry check can fail.
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "expired-token",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID: 1,
		Role:   domain.RoleAdmin,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Verify_BadSignature(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour, nil)
	verifier := NewTokenService("secret-b", time.Hour, nil)

	token, err := issuer.Issue(context.Background(), 1, domain.RolePatient)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Verify(context.Background(), token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, nil)

	if _, err := svc.Verify(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Revoke(t *testing.T) {
	revoker := newStubRevoker()
	svc := NewTokenService("secret", time.Hour, revoker)

	token, err := svc.Issue(context.Background(), 7, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.Verify(context.Background(), token); err != nil {
		t.Fatalf("verify before revoke failed: %v", err)
	}

	if err := svc.Revoke(context.Background(), token); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, domain.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}
}

func TestTokenService_Revoke_NoRevoker(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, nil)

	token, err := svc.Issue(context.Background(), 7, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Without a revoker the call is a documented no-op: the token stays valid.
	if err := svc.Revoke(context.Background(), token); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if _, err := svc.Verify(context.Background(), token); err != nil {
		t.Fatalf("token should remain valid, got %v", err)
	}
}
