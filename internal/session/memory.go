package session

import (
	"context"
	"encoding/json"
	"sync"

	"clmi/internal/domain/user"
)

// MemoryStore keeps session state in-process. It backs tests and demo
// deployments that run without Redis.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) SaveUser(_ context.Context, u user.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[KeyUser] = string(b)
	s.values[KeyAuthenticated] = "true"
	return nil
}

func (s *MemoryStore) CurrentUser(_ context.Context) (user.User, bool) {
	s.mu.RLock()
	raw, ok := s.values[KeyUser]
	s.mu.RUnlock()
	if !ok {
		return user.User{}, false
	}
	var u user.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return user.User{}, false
	}
	return u, true
}

func (s *MemoryStore) Authenticated(ctx context.Context) bool {
	s.mu.RLock()
	flag := s.values[KeyAuthenticated]
	s.mu.RUnlock()
	if flag != "true" {
		return false
	}
	_, ok := s.CurrentUser(ctx)
	return ok
}

func (s *MemoryStore) SetRemember(_ context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on {
		s.values[KeyRemember] = "true"
	} else {
		delete(s.values, KeyRemember)
	}
	return nil
}

func (s *MemoryStore) Remembered(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[KeyRemember] == "true"
}

func (s *MemoryStore) ClearUser(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, KeyUser)
	delete(s.values, KeyAuthenticated)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
	return nil
}
