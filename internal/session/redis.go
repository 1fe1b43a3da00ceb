package session

import (
	"context"
	"encoding/json"

	"clmi/internal/domain/user"
	"clmi/internal/infrastructure/cache"
)

// RedisStore persists the session slot in Redis so it survives process
// restarts. Keys carry no TTL; lifecycle is owned by the auth flow.
type RedisStore struct {
	cache *cache.Redis
}

func NewRedisStore(c *cache.Redis) *RedisStore {
	return &RedisStore{cache: c}
}

func (s *RedisStore) SaveUser(ctx context.Context, u user.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.cache.SetPersistent(ctx, KeyUser, string(b)); err != nil {
		return err
	}
	return s.cache.SetPersistent(ctx, KeyAuthenticated, "true")
}

func (s *RedisStore) CurrentUser(ctx context.Context) (user.User, bool) {
	raw, ok, err := s.cache.GetPersistent(ctx, KeyUser)
	if err != nil || !ok {
		return user.User{}, false
	}
	var u user.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return user.User{}, false
	}
	return u, true
}

func (s *RedisStore) Authenticated(ctx context.Context) bool {
	flag, ok, err := s.cache.GetPersistent(ctx, KeyAuthenticated)
	if err != nil || !ok || flag != "true" {
		return false
	}
	_, ok = s.CurrentUser(ctx)
	return ok
}

func (s *RedisStore) SetRemember(ctx context.Context, on bool) error {
	if on {
		return s.cache.SetPersistent(ctx, KeyRemember, "true")
	}
	return s.cache.Delete(ctx, KeyRemember)
}

func (s *RedisStore) Remembered(ctx context.Context) bool {
	flag, ok, err := s.cache.GetPersistent(ctx, KeyRemember)
	return err == nil && ok && flag == "true"
}

func (s *RedisStore) ClearUser(ctx context.Context) error {
	return s.cache.Delete(ctx, KeyUser, KeyAuthenticated)
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.cache.Delete(ctx, KeyUser, KeyAuthenticated, KeyRemember)
}
