// Package store holds the in-memory (degraded mode) backends and the
// decorators that put a durable backend in front of them.
package store

import (
	"context"
	"slices"
	"sync"

	"github.com/dkeye/Chat/internal/domain"
)

// DefaultMemoryLogCap bounds each room's in-memory message log.
const DefaultMemoryLogCap = 500

// MemoryRooms is a threadsafe RoomBackend kept in process memory.
type MemoryRooms struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]*domain.Room
	order []domain.RoomID
}

func NewMemoryRooms() *MemoryRooms {
	return &MemoryRooms{rooms: make(map[domain.RoomID]*domain.Room)}
}

func (m *MemoryRooms) Put(_ context.Context, room domain.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[room.ID]; !ok {
		m.order = append(m.order, room.ID)
	}
	r := room.Clone()
	m.rooms[room.ID] = &r
	return nil
}

func (m *MemoryRooms) Get(_ context.Context, id domain.RoomID) (domain.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	return r.Clone(), nil
}

func (m *MemoryRooms) List(_ context.Context) ([]domain.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Room, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.rooms[id].Clone())
	}
	return out, nil
}

func (m *MemoryRooms) AddUser(_ context.Context, id domain.RoomID, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[id]
	if !ok {
		return domain.ErrRoomNotFound
	}
	if !r.HasUser(username) {
		r.Users = append(r.Users, username)
	}
	return nil
}

// MemoryMessages is a threadsafe MessageBackend with a per-room cap.
type MemoryMessages struct {
	mu   sync.RWMutex
	cap  int
	logs map[domain.RoomID][]domain.Message
	ids  map[domain.ChatID]struct{}
}

func NewMemoryMessages(capPerRoom int) *MemoryMessages {
	if capPerRoom <= 0 {
		capPerRoom = DefaultMemoryLogCap
	}
	return &MemoryMessages{
		cap:  capPerRoom,
		logs: make(map[domain.RoomID][]domain.Message),
		ids:  make(map[domain.ChatID]struct{}),
	}
}

// Save appends msg; saving a known ChatID again is a no-op.
func (m *MemoryMessages) Save(_ context.Context, msg domain.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.ids[msg.ChatID]; dup {
		return nil
	}
	entries := append(m.logs[msg.RoomID], msg)
	if over := len(entries) - m.cap; over > 0 {
		for _, old := range entries[:over] {
			delete(m.ids, old.ChatID)
		}
		entries = slices.Clone(entries[over:])
	}
	m.logs[msg.RoomID] = entries
	m.ids[msg.ChatID] = struct{}{}
	return nil
}

func (m *MemoryMessages) Recent(_ context.Context, roomID domain.RoomID, limit int) ([]domain.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := m.logs[roomID]
	start := 0
	if limit > 0 && len(entries) > limit {
		start = len(entries) - limit
	}
	return slices.Clone(entries[start:]), nil
}

// MemoryUserState keeps PersistedUserState in memory.
// A cleared entry is kept as known-empty so it can shadow a stale durable value.
type MemoryUserState struct {
	mu    sync.RWMutex
	rooms map[string]domain.RoomID
}

func NewMemoryUserState() *MemoryUserState {
	return &MemoryUserState{rooms: make(map[string]domain.RoomID)}
}

func (m *MemoryUserState) Get(_ context.Context, username string) (domain.RoomID, bool, error) {
	id, _ := m.lookup(username)
	return id, id != "", nil
}

func (m *MemoryUserState) Set(_ context.Context, username string, roomID domain.RoomID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[username] = roomID
	return nil
}

func (m *MemoryUserState) lookup(username string) (domain.RoomID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, known := m.rooms[username]
	return id, known
}
