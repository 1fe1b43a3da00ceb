// Package session owns the persisted session slot: the current user, the
// authenticated flag, and the durable "remember me" flag. The slot is a
// single shared resource, last writer wins.
package session

import (
	"context"

	"clmi/internal/domain/user"
)

// Storage keys, kept stable so persisted sessions remain readable
// across versions.
const (
	KeyUser          = "clmi_user"
	KeyAuthenticated = "clmi_authenticated"
	KeyRemember      = "clmi_remember_me"
)

// Store persists the current session. Writing the user always sets the
// authenticated flag; clearing the user clears it too. Reads of an
// absent session report anonymous rather than erroring.
type Store interface {
	// SaveUser makes u the current session and marks it authenticated.
	SaveUser(ctx context.Context, u user.User) error
	// CurrentUser returns the persisted session user, if any. A
	// malformed persisted entry reads as no session.
	CurrentUser(ctx context.Context) (user.User, bool)
	// Authenticated reports whether an authenticated session exists.
	Authenticated(ctx context.Context) bool
	// SetRemember persists or removes the durable remember flag.
	SetRemember(ctx context.Context, on bool) error
	// Remembered reports whether the remember flag is set.
	Remembered(ctx context.Context) bool
	// ClearUser removes the current user and the authenticated flag,
	// leaving the remember flag alone.
	ClearUser(ctx context.Context) error
	// Clear removes all session state including the remember flag.
	Clear(ctx context.Context) error
}
