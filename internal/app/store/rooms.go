package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const maxPasswordLen = 72 // bcrypt input limit

// Rooms implements core.RoomStore over an optional durable backend,
// falling back to memory whenever the durable call fails.
type Rooms struct {
	durable core.RoomBackend
	memory  *MemoryRooms
	hasher  *PasswordHasher
	now     func() time.Time
}

// NewRooms wires the store. durable may be nil (degraded mode).
func NewRooms(durable core.RoomBackend, memory *MemoryRooms, hasher *PasswordHasher) *Rooms {
	if memory == nil {
		memory = NewMemoryRooms()
	}
	if hasher == nil {
		hasher = NewPasswordHasher(0)
	}
	return &Rooms{durable: durable, memory: memory, hasher: hasher, now: time.Now}
}

func (s *Rooms) Create(ctx context.Context, name, creator, password string) (domain.Room, error) {
	name, err := domain.NewRoomName(name)
	if err != nil {
		return domain.Room{}, err
	}
	if len(password) > maxPasswordLen {
		return domain.Room{}, domain.ErrPasswordTooLong
	}
	room := domain.Room{
		ID:        domain.RoomID(uuid.NewString()),
		Name:      name,
		AdminID:   creator,
		Users:     []string{creator},
		CreatedAt: s.now().UTC(),
	}
	if password != "" {
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return domain.Room{}, fmt.Errorf("hash room password: %w", err)
		}
		room.Private = true
		room.PasswordHash = hash
	}

	if s.durable != nil {
		err := s.durable.Put(ctx, room)
		if err == nil {
			return room, nil
		}
		s.degraded("create", room.ID, err)
	}
	_ = s.memory.Put(ctx, room)
	return room, nil
}

func (s *Rooms) List(ctx context.Context) ([]domain.Room, error) {
	var durable []domain.Room
	if s.durable != nil {
		rooms, err := s.durable.List(ctx)
		if err != nil {
			s.degraded("list", "", err)
		}
		durable = rooms
	}
	memory, _ := s.memory.List(ctx)
	return mergeRooms(durable, memory), nil
}

func (s *Rooms) Get(ctx context.Context, id domain.RoomID) (domain.Room, error) {
	var (
		room  domain.Room
		found bool
	)
	if s.durable != nil {
		r, err := s.durable.Get(ctx, id)
		switch {
		case err == nil:
			room, found = r, true
		case !errors.Is(err, domain.ErrRoomNotFound):
			s.degraded("get", id, err)
		}
	}
	if m, err := s.memory.Get(ctx, id); err == nil {
		if found {
			room.Users = unionUsers(room.Users, m.Users)
		} else {
			room, found = m, true
		}
	}
	if !found {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	return room, nil
}

func (s *Rooms) CheckPasswordAndRecordMember(ctx context.Context, id domain.RoomID, username, password string) error {
	room, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if room.Private && !s.hasher.Verify(password, room.PasswordHash) {
		return domain.ErrWrongPassword
	}
	if room.HasUser(username) {
		return nil
	}

	if s.durable != nil {
		err := s.durable.AddUser(ctx, id, username)
		if err == nil {
			return nil
		}
		s.degraded("add user", id, err)
	}
	if _, err := s.memory.Get(ctx, id); errors.Is(err, domain.ErrRoomNotFound) {
		_ = s.memory.Put(ctx, room)
	}
	_ = s.memory.AddUser(ctx, id, username)
	return nil
}

func (s *Rooms) degraded(op string, id domain.RoomID, err error) {
	log.Warn().
		Err(fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)).
		Str("module", "app.store").
		Str("op", op).
		Str("room_id", string(id)).
		Msg("room backend failed, using memory")
}

// mergeRooms unions both sources by id and orders them by creation time.
func mergeRooms(durable, memory []domain.Room) []domain.Room {
	out := make([]domain.Room, 0, len(durable)+len(memory))
	index := make(map[domain.RoomID]int, len(durable)+len(memory))
	for _, src := range [][]domain.Room{durable, memory} {
		for _, r := range src {
			if i, ok := index[r.ID]; ok {
				out[i].Users = unionUsers(out[i].Users, r.Users)
				continue
			}
			index[r.ID] = len(out)
			out = append(out, r.Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Room) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

func unionUsers(a, b []string) []string {
	out := slices.Clone(a)
	for _, u := range b {
		if !slices.Contains(out, u) {
			out = append(out, u)
		}
	}
	return out
}
