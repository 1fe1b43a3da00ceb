// Package auth manages the session state machine: Anonymous and
// Authenticated(user), with login, signup, and logout transitions.
package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"clmi/internal/domain/user"
	"clmi/internal/pkg/token"
	"clmi/internal/session"
	"clmi/internal/validation"
)

// User-facing messages. Validation failures always come back as a
// Result, never as an error.
const (
	MsgLoginRequired      = "Email and password are required"
	MsgInvalidEmail       = "Please enter a valid email address"
	MsgInvalidCredentials = "Invalid email or password"
	MsgLoginOK            = "Login successful"
	MsgLoginFailed        = "An error occurred during login"

	MsgSignupRequired   = "All fields are required"
	MsgWeakPassword     = "Password must be at least 6 characters long"
	MsgPasswordMismatch = "Passwords do not match"
	MsgTermsNotAgreed   = "You must agree to the terms and conditions"
	MsgDuplicateEmail   = "User with this email already exists"
	MsgSignupOK         = "Account created successfully"
	MsgSignupFailed     = "An error occurred during signup"

	MsgLogoutOK = "Logged out successfully"
)

// Result is the uniform outcome of every auth operation.
type Result struct {
	Success bool       `json:"success"`
	User    *user.User `json:"user,omitempty"`
	Token   string     `json:"token,omitempty"`
	Message string     `json:"message"`
}

func failure(message string) Result {
	return Result{Success: false, Message: message}
}

// SignupInput carries the signup form fields.
type SignupInput struct {
	Name            string
	Email           string
	UserType        string
	Password        string
	ConfirmPassword string
	AgreeTerms      bool
}

// Service orchestrates validation, the user directory, the session
// store, and token issuing. The directory decides the credential policy
// (demo accept-any vs registered users); the service is the same either
// way.
type Service struct {
	directory user.Directory
	sessions  session.Store
	tokens    token.Service
	logger    *log.Logger
}

func NewService(directory user.Directory, sessions session.Store, tokens token.Service, logger *log.Logger) *Service {
	return &Service{directory: directory, sessions: sessions, tokens: tokens, logger: logger}
}

// Login validates the credentials and, on success, persists the user as
// the current session. Validation failures return without touching
// session state. When rememberMe is set the durable remember flag is
// persisted alongside the session.
func (s *Service) Login(ctx context.Context, email, password string, rememberMe bool) Result {
	if len(validation.Required(map[string]string{"email": email, "password": password})) > 0 {
		return failure(MsgLoginRequired)
	}
	if !validation.Email(email) {
		return failure(MsgInvalidEmail)
	}

	u, err := s.directory.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return failure(MsgInvalidCredentials)
		}
		s.logf("[Auth] Login failed | email=%s err=%v", email, err)
		return failure(MsgLoginFailed)
	}

	if err := s.sessions.SaveUser(ctx, u); err != nil {
		s.logf("[Auth] Session save failed | err=%v", err)
		return failure(MsgLoginFailed)
	}
	if rememberMe {
		if err := s.sessions.SetRemember(ctx, true); err != nil {
			s.logf("[Auth] Remember flag save failed | err=%v", err)
		}
	}

	return Result{Success: true, User: &u, Token: s.issue(u), Message: MsgLoginOK}
}

// Signup validates the form, registers the user with the directory, and
// persists the new session. All failures leave session state untouched.
func (s *Service) Signup(ctx context.Context, in SignupInput) Result {
	missing := validation.Required(map[string]string{
		"name":      in.Name,
		"email":     in.Email,
		"user_type": in.UserType,
		"password":  in.Password,
	})
	if len(missing) > 0 {
		return failure(MsgSignupRequired)
	}
	if !validation.Email(in.Email) {
		return failure(MsgInvalidEmail)
	}
	if !validation.Password(in.Password) {
		return failure(MsgWeakPassword)
	}
	if in.Password != in.ConfirmPassword {
		return failure(MsgPasswordMismatch)
	}
	if !in.AgreeTerms {
		return failure(MsgTermsNotAgreed)
	}

	role := in.UserType
	if !user.ValidRole(role) {
		role = user.RoleUser
	}

	now := time.Now().UTC()
	u := user.User{
		ID:        newUserID(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.directory.Register(ctx, u, in.Password); err != nil {
		if errors.Is(err, user.ErrDuplicate) {
			return failure(MsgDuplicateEmail)
		}
		s.logf("[Auth] Signup failed | email=%s err=%v", in.Email, err)
		return failure(MsgSignupFailed)
	}

	if err := s.sessions.SaveUser(ctx, u); err != nil {
		s.logf("[Auth] Session save failed | err=%v", err)
		return failure(MsgSignupFailed)
	}

	return Result{Success: true, User: &u, Token: s.issue(u), Message: MsgSignupOK}
}

// Logout always succeeds. The current session is cleared; the remember
// flag itself survives logout and only decides whether the rest of the
// persisted slot is purged, so a remembered login can be restored by the
// surrounding application.
func (s *Service) Logout(ctx context.Context) Result {
	if err := s.sessions.ClearUser(ctx); err != nil {
		s.logf("[Auth] Session clear failed | err=%v", err)
	}
	if !s.sessions.Remembered(ctx) {
		if err := s.sessions.Clear(ctx); err != nil {
			s.logf("[Auth] Session purge failed | err=%v", err)
		}
	}
	return Result{Success: true, Message: MsgLogoutOK}
}

// IsAuthenticated is a pure read of persisted state; it never errors.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	return s.sessions.Authenticated(ctx)
}

// CurrentUser returns the session user, or nil when anonymous.
func (s *Service) CurrentUser(ctx context.Context) *user.User {
	u, ok := s.sessions.CurrentUser(ctx)
	if !ok {
		return nil
	}
	return &u
}

func (s *Service) issue(u user.User) string {
	if s.tokens == nil {
		return ""
	}
	t, err := s.tokens.Issue(u)
	if err != nil {
		s.logf("[Auth] Token issue failed | err=%v", err)
		return ""
	}
	return t
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
