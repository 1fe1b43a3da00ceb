package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"clmi/internal/domain/user"
)

func newUserID() string {
	return uuid.NewString()
}

// MockDirectory is the demo-mode directory: any syntactically valid
// email and password authenticate, and the display name is the email's
// local part. Register is a no-op success so the signup flow works
// without storage. No credential verification happens here at all.
type MockDirectory struct{}

func NewMockDirectory() MockDirectory { return MockDirectory{} }

func (MockDirectory) Register(context.Context, user.User, string) error { return nil }

func (MockDirectory) Authenticate(_ context.Context, email, _ string) (user.User, error) {
	name := email
	if i := strings.Index(email, "@"); i >= 0 {
		name = email[:i]
	}
	now := time.Now().UTC()
	return user.User{
		ID:        newUserID(),
		Name:      name,
		Email:     email,
		Role:      user.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// MemoryDirectory keeps signed-up users in process memory and checks
// credentials by exact email+password match, the directory-backed demo
// variant. Passwords are stored as given; this variant exists for demo
// parity, the postgres directory is the hashed one.
type MemoryDirectory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	user     user.User
	password string
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{entries: make(map[string]memoryEntry)}
}

func (d *MemoryDirectory) Register(_ context.Context, u user.User, password string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.entries[u.Email]; exists {
		return user.ErrDuplicate
	}
	d.entries[u.Email] = memoryEntry{user: u, password: password}
	return nil
}

func (d *MemoryDirectory) Authenticate(_ context.Context, email, password string) (user.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	entry, ok := d.entries[email]
	if !ok || entry.password != password {
		return user.User{}, user.ErrNotFound
	}
	return entry.user, nil
}
