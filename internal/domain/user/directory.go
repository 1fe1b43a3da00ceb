package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("email already registered")
)

// Directory is the user lookup an auth service authenticates against.
// The demo directory accepts any syntactically valid credentials; backed
// implementations check registered users. Register returns ErrDuplicate
// when the email is already taken, Authenticate returns ErrNotFound when
// no user matches the credentials.
type Directory interface {
	Register(ctx context.Context, u User, password string) error
	Authenticate(ctx context.Context, email, password string) (User, error)
}
