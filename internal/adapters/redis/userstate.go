// Package redis keeps each user's last room in Redis so it survives a
// process restart.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dkeye/Chat/internal/domain"
	"github.com/redis/go-redis/v9"
)

const DefaultPrefix = "chat:"

// UserStateStore implements core.UserStateStore.
type UserStateStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewUserStateStore stores keys under prefix. A zero ttl keeps them forever.
func NewUserStateStore(client *redis.Client, prefix string, ttl time.Duration) *UserStateStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &UserStateStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *UserStateStore) key(username string) string {
	return fmt.Sprintf("%suser:%s:room", s.prefix, username)
}

func (s *UserStateStore) Get(ctx context.Context, username string) (domain.RoomID, bool, error) {
	id, err := s.client.Get(ctx, s.key(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("user state get: %w", err)
	}
	return domain.RoomID(id), id != "", nil
}

// Set records roomID; an empty roomID removes the key.
func (s *UserStateStore) Set(ctx context.Context, username string, roomID domain.RoomID) error {
	if roomID == "" {
		if err := s.client.Del(ctx, s.key(username)).Err(); err != nil {
			return fmt.Errorf("user state delete: %w", err)
		}
		return nil
	}
	if err := s.client.Set(ctx, s.key(username), string(roomID), s.ttl).Err(); err != nil {
		return fmt.Errorf("user state set: %w", err)
	}
	return nil
}

// Dial builds a client for addr and pings it. The client is returned even
// when the ping fails; callers fall back to memory until Redis answers.
func Dial(ctx context.Context, addr string, timeout time.Duration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return client, fmt.Errorf("redis %s: %w", addr, err)
	}
	return client, nil
}
