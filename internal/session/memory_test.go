package session

import (
	"context"
	"testing"

	"clmi/internal/domain/user"
)

func TestMemoryStoreAbsentKeysReadAsAnonymous(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, ok := s.CurrentUser(ctx); ok {
		t.Fatalf("fresh store should have no session")
	}
	if s.Authenticated(ctx) {
		t.Fatalf("fresh store should not be authenticated")
	}
	if s.Remembered(ctx) {
		t.Fatalf("fresh store should not be remembered")
	}
}

func TestMemoryStoreSaveUserSetsAuthenticatedFlag(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.SaveUser(ctx, user.User{ID: "u1", Name: "u", Email: "u@x.com", Role: user.RoleUser}); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	got, ok := s.CurrentUser(ctx)
	if !ok || got.Email != "u@x.com" {
		t.Fatalf("CurrentUser = %+v, ok=%v", got, ok)
	}
	if !s.Authenticated(ctx) {
		t.Errorf("expected authenticated after SaveUser")
	}
}

func TestMemoryStoreClearUserKeepsRememberFlag(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.SaveUser(ctx, user.User{ID: "u1", Email: "u@x.com"})
	_ = s.SetRemember(ctx, true)

	if err := s.ClearUser(ctx); err != nil {
		t.Fatalf("ClearUser: %v", err)
	}
	if _, ok := s.CurrentUser(ctx); ok {
		t.Errorf("user should be gone after ClearUser")
	}
	if s.Authenticated(ctx) {
		t.Errorf("authenticated flag should be gone after ClearUser")
	}
	if !s.Remembered(ctx) {
		t.Errorf("remember flag must survive ClearUser")
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.Remembered(ctx) {
		t.Errorf("Clear must remove the remember flag")
	}
}

func TestMemoryStoreLastWriterWins(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.SaveUser(ctx, user.User{ID: "u1", Email: "first@x.com"})
	_ = s.SaveUser(ctx, user.User{ID: "u2", Email: "second@x.com"})

	got, _ := s.CurrentUser(ctx)
	if got.Email != "second@x.com" {
		t.Errorf("CurrentUser = %+v, want the last written user", got)
	}
}
