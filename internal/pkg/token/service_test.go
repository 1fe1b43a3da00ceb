package token

import (
	"errors"
	"testing"
	"time"

	"clmi/internal/domain/user"
)

func TestIssueValidateRoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	tok, err := svc.Issue(user.User{ID: "u1", Email: "u@x.com", Role: user.RoleUser})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "u@x.com" || claims.Role != user.RoleUser {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := svc.Issue(user.User{ID: "u1"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Validate(tok); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	tok, err := NewHMACService("secret-a", time.Hour).Issue(user.User{ID: "u1"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := NewHMACService("secret-b", time.Hour).Validate(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
