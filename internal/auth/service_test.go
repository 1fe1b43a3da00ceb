package auth

import (
	"context"
	"testing"
	"time"

	"clmi/internal/domain/user"
	"clmi/internal/pkg/token"
	"clmi/internal/session"
)

func newMockService() (*Service, *session.MemoryStore) {
	store := session.NewMemoryStore()
	tokens := token.NewHMACService("test-secret", time.Hour)
	return NewService(NewMockDirectory(), store, tokens, nil), store
}

func newDirectoryService() (*Service, *session.MemoryStore) {
	store := session.NewMemoryStore()
	tokens := token.NewHMACService("test-secret", time.Hour)
	return NewService(NewMemoryDirectory(), store, tokens, nil), store
}

func TestLoginEmptyCredentialsFailsWithoutTouchingSession(t *testing.T) {
	ctx := context.Background()
	svc, store := newMockService()

	res := svc.Login(ctx, "", "", false)
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Message != MsgLoginRequired {
		t.Errorf("message = %q", res.Message)
	}
	if _, ok := store.CurrentUser(ctx); ok {
		t.Errorf("session must not be touched by a failed login")
	}
}

func TestLoginInvalidEmailFails(t *testing.T) {
	svc, _ := newMockService()
	res := svc.Login(context.Background(), "a@b", "secret", false)
	if res.Success || res.Message != MsgInvalidEmail {
		t.Errorf("result = %+v", res)
	}
}

func TestLoginMockModeAcceptsAnyValidCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMockService()

	res := svc.Login(ctx, "u@x.com", "secret", false)
	if !res.Success {
		t.Fatalf("result = %+v", res)
	}
	if res.User == nil || res.User.Name != "u" {
		t.Errorf("display name should be the email local part, got %+v", res.User)
	}
	if res.Token == "" {
		t.Errorf("expected a session token")
	}
	if !svc.IsAuthenticated(ctx) {
		t.Errorf("expected authenticated session after login")
	}
	if got := svc.CurrentUser(ctx); got == nil || got.Email != "u@x.com" {
		t.Errorf("CurrentUser = %+v", got)
	}
}

func validSignup() SignupInput {
	return SignupInput{
		Name:            "Sok Dara",
		Email:           "dara@x.com",
		UserType:        user.RoleStudent,
		Password:        "secret1",
		ConfirmPassword: "secret1",
		AgreeTerms:      true,
	}
}

func TestSignupPasswordMismatch(t *testing.T) {
	ctx := context.Background()
	svc, store := newMockService()

	in := validSignup()
	in.ConfirmPassword = "different"
	res := svc.Signup(ctx, in)
	if res.Success || res.Message != MsgPasswordMismatch {
		t.Errorf("result = %+v", res)
	}
	if _, ok := store.CurrentUser(ctx); ok {
		t.Errorf("session must not be touched by a failed signup")
	}
}

func TestSignupValidationOrder(t *testing.T) {
	svc, _ := newMockService()
	ctx := context.Background()

	cases := []struct {
		mutate func(*SignupInput)
		want   string
	}{
		{func(in *SignupInput) { in.Name = "" }, MsgSignupRequired},
		{func(in *SignupInput) { in.Email = "not-an-email" }, MsgInvalidEmail},
		{func(in *SignupInput) { in.Password = "12345"; in.ConfirmPassword = "12345" }, MsgWeakPassword},
		{func(in *SignupInput) { in.AgreeTerms = false }, MsgTermsNotAgreed},
	}
	for _, tc := range cases {
		in := validSignup()
		tc.mutate(&in)
		if res := svc.Signup(ctx, in); res.Success || res.Message != tc.want {
			t.Errorf("signup(%+v) = %+v, want message %q", in, res, tc.want)
		}
	}
}

func TestSignupAssignsRoleAndSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMockService()

	res := svc.Signup(ctx, validSignup())
	if !res.Success {
		t.Fatalf("result = %+v", res)
	}
	if res.User.Role != user.RoleStudent {
		t.Errorf("role = %q", res.User.Role)
	}
	if got := svc.CurrentUser(ctx); got == nil || got.Email != "dara@x.com" {
		t.Errorf("CurrentUser = %+v", got)
	}
}

func TestSignupDuplicateEmailInDirectoryMode(t *testing.T) {
	ctx := context.Background()
	svc, _ := newDirectoryService()

	if res := svc.Signup(ctx, validSignup()); !res.Success {
		t.Fatalf("first signup failed: %+v", res)
	}
	res := svc.Signup(ctx, validSignup())
	if res.Success || res.Message != MsgDuplicateEmail {
		t.Errorf("second signup = %+v", res)
	}
}

func TestDirectoryModeLoginChecksExactCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newDirectoryService()

	if res := svc.Signup(ctx, validSignup()); !res.Success {
		t.Fatalf("signup failed: %+v", res)
	}
	_ = svc.Logout(ctx)

	if res := svc.Login(ctx, "dara@x.com", "wrong-password", false); res.Success || res.Message != MsgInvalidCredentials {
		t.Errorf("wrong password = %+v", res)
	}
	if res := svc.Login(ctx, "dara@x.com", "secret1", false); !res.Success {
		t.Errorf("correct password = %+v", res)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMockService()

	_ = svc.Login(ctx, "u@x.com", "secret", false)
	res := svc.Logout(ctx)
	if !res.Success {
		t.Fatalf("logout = %+v", res)
	}
	if svc.IsAuthenticated(ctx) {
		t.Errorf("expected anonymous after logout")
	}
	if svc.CurrentUser(ctx) != nil {
		t.Errorf("expected no current user after logout")
	}
}

func TestLogoutPreservesRememberFlag(t *testing.T) {
	ctx := context.Background()
	svc, store := newMockService()

	_ = svc.Login(ctx, "u@x.com", "secret", true)
	if !store.Remembered(ctx) {
		t.Fatalf("remember flag should be set by login")
	}

	_ = svc.Logout(ctx)
	if svc.CurrentUser(ctx) != nil {
		t.Errorf("current user must be cleared even when remembered")
	}
	if !store.Remembered(ctx) {
		t.Errorf("remember flag must survive logout")
	}
}

func TestLogoutWithoutRememberPurgesEverything(t *testing.T) {
	ctx := context.Background()
	svc, store := newMockService()

	_ = svc.Login(ctx, "u@x.com", "secret", false)
	_ = svc.Logout(ctx)

	if store.Remembered(ctx) {
		t.Errorf("nothing should remain after logout without remember")
	}
	if _, ok := store.CurrentUser(ctx); ok {
		t.Errorf("session should be empty")
	}
}
