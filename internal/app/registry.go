package app

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
	"github.com/rs/zerolog/log"
)

type sessionEntry struct {
	Username string
	RoomID   domain.RoomID
	Conn     core.SignalConnection
	Cancel   context.CancelFunc
	joinSeq  uint64
}

// Registry maps live connections to (username, room). It is the only
// owner of that state; callers go through its methods.
// Unknown connection ids are no-ops: disconnect races are expected.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.ConnID]*sessionEntry
	joins    uint64

	rooms core.RoomStore
	users core.UserStateStore
}

func NewRegistry(rooms core.RoomStore, users core.UserStateStore) *Registry {
	return &Registry{
		sessions: make(map[domain.ConnID]*sessionEntry),
		rooms:    rooms,
		users:    users,
	}
}

// Register creates an anonymous entry for a fresh connection.
func (r *Registry) Register(cid domain.ConnID, conn core.SignalConnection, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[cid] = &sessionEntry{Conn: conn, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("cid", string(cid)).Msg("registered connection")
}

// Login binds username to the connection and resolves the room to rejoin:
// the hint if given, else the user's persisted room. The room is returned
// only if it still exists and the connection is still registered.
func (r *Registry) Login(ctx context.Context, cid domain.ConnID, username string, hint domain.RoomID) (domain.RoomID, bool) {
	r.mu.Lock()
	e, ok := r.sessions[cid]
	if ok {
		e.Username = username
	}
	r.mu.Unlock()
	if !ok {
		return "", false
	}
	log.Info().Str("module", "app.registry").Str("cid", string(cid)).Str("username", username).Msg("logged in")

	target := hint
	if target == "" {
		if id, found, err := r.users.Get(ctx, username); err == nil && found {
			target = id
		}
	}
	if target == "" {
		return "", false
	}
	if _, err := r.rooms.Get(ctx, target); err != nil {
		log.Info().Err(err).Str("module", "app.registry").Str("cid", string(cid)).Str("room_id", string(target)).Msg("saved room gone")
		return "", false
	}

	// The client may have dropped while the stores were consulted.
	s, ok := r.Session(cid)
	if !ok || s.Username != username {
		return "", false
	}
	return target, true
}

// SetRoom moves the connection to roomID ("" for none) and mirrors it
// into the persisted user state. It returns the previous room.
func (r *Registry) SetRoom(ctx context.Context, cid domain.ConnID, roomID domain.RoomID) (domain.RoomID, bool) {
	r.mu.Lock()
	e, ok := r.sessions[cid]
	if !ok {
		r.mu.Unlock()
		return "", false
	}
	prev := e.RoomID
	e.RoomID = roomID
	if roomID != "" {
		r.joins++
		e.joinSeq = r.joins
	}
	username := e.Username
	r.mu.Unlock()

	log.Info().Str("module", "app.registry").Str("cid", string(cid)).Str("room_id", string(roomID)).Msg("updated room")
	if username != "" {
		_ = r.users.Set(ctx, username, roomID)
	}
	return prev, true
}

// RemovedSession is what Unregister reports about a torn-down connection.
type RemovedSession struct {
	Username string
	RoomID   domain.RoomID
	Found    bool
}

// Unregister removes the connection. Persisted user state is left alone
// so a later login can restore the room.
func (r *Registry) Unregister(cid domain.ConnID) RemovedSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[cid]
	if !ok {
		return RemovedSession{}
	}
	delete(r.sessions, cid)
	log.Info().Str("module", "app.registry").Str("cid", string(cid)).Msg("unregistered connection")
	return RemovedSession{Username: e.Username, RoomID: e.RoomID, Found: true}
}

// SessionSnapshot is a copy of one registry entry.
type SessionSnapshot struct {
	ConnID   domain.ConnID
	Username string
	RoomID   domain.RoomID
	Conn     core.SignalConnection
}

func (r *Registry) Session(cid domain.ConnID) (SessionSnapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[cid]
	if !ok {
		return SessionSnapshot{}, false
	}
	return snapshot(cid, e), true
}

func (r *Registry) MembersOfRoom(roomID domain.RoomID) []SessionSnapshot {
	return r.collect(func(e *sessionEntry) bool { return e.RoomID == roomID })
}

func (r *Registry) All() []SessionSnapshot {
	return r.collect(func(*sessionEntry) bool { return true })
}

// GlobalUsers returns the sorted distinct usernames of all logged-in connections.
func (r *Registry) GlobalUsers() []string {
	return r.usernames(func(e *sessionEntry) bool { return e.Username != "" })
}

// RoomUsers returns the sorted distinct usernames of connections in roomID.
func (r *Registry) RoomUsers(roomID domain.RoomID) []string {
	return r.usernames(func(e *sessionEntry) bool { return e.Username != "" && e.RoomID == roomID })
}

// Presence groups logged-in connections by username. The room of a
// multi-connection user is the one most recently joined by any of them.
func (r *Registry) Presence() []domain.Presence {
	r.mu.RLock()
	byName := make(map[string]*domain.Presence)
	newest := make(map[string]uint64)
	for cid, e := range r.sessions {
		if e.Username == "" {
			continue
		}
		p, ok := byName[e.Username]
		if !ok {
			p = &domain.Presence{Username: e.Username}
			byName[e.Username] = p
		}
		p.Conns = append(p.Conns, cid)
		p.Connections++
		if e.RoomID != "" && e.joinSeq > newest[e.Username] {
			p.RoomID = e.RoomID
			newest[e.Username] = e.joinSeq
		}
	}
	r.mu.RUnlock()

	out := make([]domain.Presence, 0, len(byName))
	for _, p := range byName {
		slices.Sort(p.Conns)
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b domain.Presence) int {
		return strings.Compare(a.Username, b.Username)
	})
	return out
}

func (r *Registry) Cancel(cid domain.ConnID) bool {
	r.mu.RLock()
	e, ok := r.sessions[cid]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "app.registry").Str("cid", string(cid)).Msg("canceled session")
	return true
}

func (r *Registry) collect(keep func(*sessionEntry) bool) []SessionSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]SessionSnapshot, 0, len(r.sessions))
	for cid, e := range r.sessions {
		if keep(e) {
			out = append(out, snapshot(cid, e))
		}
	}
	return out
}

func (r *Registry) usernames(keep func(*sessionEntry) bool) []string {
	r.mu.RLock()
	set := make(map[string]struct{}, len(r.sessions))
	for _, e := range r.sessions {
		if keep(e) {
			set[e.Username] = struct{}{}
		}
	}
	r.mu.RUnlock()

	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func snapshot(cid domain.ConnID, e *sessionEntry) SessionSnapshot {
	return SessionSnapshot{ConnID: cid, Username: e.Username, RoomID: e.RoomID, Conn: e.Conn}
}
