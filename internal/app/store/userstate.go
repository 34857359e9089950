package store

import (
	"context"
	"fmt"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
	"github.com/rs/zerolog/log"
)

// UserState writes through to memory and an optional durable store.
// Memory answers first since this process is the only writer; the durable
// copy only matters after a restart.
type UserState struct {
	durable core.UserStateStore
	memory  *MemoryUserState
}

func NewUserState(durable core.UserStateStore, memory *MemoryUserState) *UserState {
	if memory == nil {
		memory = NewMemoryUserState()
	}
	return &UserState{durable: durable, memory: memory}
}

func (s *UserState) Get(ctx context.Context, username string) (domain.RoomID, bool, error) {
	if id, known := s.memory.lookup(username); known || s.durable == nil {
		return id, id != "", nil
	}
	id, ok, err := s.durable.Get(ctx, username)
	if err != nil {
		s.degraded("get", username, err)
		return "", false, nil
	}
	return id, ok, nil
}

func (s *UserState) Set(ctx context.Context, username string, roomID domain.RoomID) error {
	_ = s.memory.Set(ctx, username, roomID)
	if s.durable == nil {
		return nil
	}
	if err := s.durable.Set(ctx, username, roomID); err != nil {
		s.degraded("set", username, err)
	}
	return nil
}

func (s *UserState) degraded(op, username string, err error) {
	log.Warn().
		Err(fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)).
		Str("module", "app.store").
		Str("op", op).
		Str("username", username).
		Msg("user state backend failed, using memory")
}
