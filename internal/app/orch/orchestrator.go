package orch

import (
	"sync"

	"github.com/dkeye/Chat/internal/app"
	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
	"github.com/dkeye/Chat/internal/protocol"
	"github.com/rs/zerolog/log"
)

// Orchestrator is the room coordinator: it owns the join/leave/send
// protocol and every emission that follows a membership change.
//
// Emissions for one room happen under that room's lock, so the last
// roomUserList a room receives is computed after every earlier change.
// Two room locks are never held at once.
type Orchestrator struct {
	Registry     *app.Registry
	Rooms        core.RoomStore
	Messages     core.MessageStore
	Policy       app.Policy
	HistoryLimit int

	locksMu  sync.Mutex
	locks    map[domain.RoomID]*sync.Mutex
	globalMu sync.Mutex
}

func (o *Orchestrator) historyLimit() int {
	if o.HistoryLimit <= 0 {
		return core.DefaultHistoryLimit
	}
	return o.HistoryLimit
}

func (o *Orchestrator) roomLock(id domain.RoomID) *sync.Mutex {
	o.locksMu.Lock()
	defer o.locksMu.Unlock()
	if o.locks == nil {
		o.locks = make(map[domain.RoomID]*sync.Mutex)
	}
	l, ok := o.locks[id]
	if !ok {
		l = &sync.Mutex{}
		o.locks[id] = l
	}
	return l
}

func (o *Orchestrator) withRoom(id domain.RoomID, fn func()) {
	l := o.roomLock(id)
	l.Lock()
	defer l.Unlock()
	fn()
}

// announce sends an optional system notice and the room's member list.
// Callers hold the room lock.
func (o *Orchestrator) announce(roomID domain.RoomID, notice string) {
	if notice != "" {
		o.broadcastRoom(roomID, protocol.NewSystemMessage(roomID, notice))
	}
	o.broadcastRoom(roomID, protocol.NewRoomUserList(roomID, o.Registry.RoomUsers(roomID)))
}

func (o *Orchestrator) announceGlobal() {
	o.globalMu.Lock()
	defer o.globalMu.Unlock()
	o.broadcastAll(protocol.NewUserList(o.Registry.GlobalUsers()))
}

func (o *Orchestrator) reply(cid domain.ConnID, v any) {
	s, ok := o.Registry.Session(cid)
	if !ok {
		return
	}
	if frame, ok := encode(v); ok {
		o.deliver(s, frame)
	}
}

func (o *Orchestrator) broadcastRoom(roomID domain.RoomID, v any) {
	frame, ok := encode(v)
	if !ok {
		return
	}
	for _, s := range o.Registry.MembersOfRoom(roomID) {
		o.deliver(s, frame)
	}
}

func (o *Orchestrator) broadcastAll(v any) {
	frame, ok := encode(v)
	if !ok {
		return
	}
	for _, s := range o.Registry.All() {
		o.deliver(s, frame)
	}
}

func (o *Orchestrator) deliver(s app.SessionSnapshot, frame core.Frame) {
	if s.Conn == nil {
		return
	}
	if err := s.Conn.TrySend(frame); err != nil {
		o.onBackpressure(s, err)
	}
}

func (o *Orchestrator) onBackpressure(s app.SessionSnapshot, err error) {
	log.Warn().Err(err).Str("module", "app.orch").Str("cid", string(s.ConnID)).Msg("send failed")
	if o.Policy == nil {
		return
	}
	switch o.Policy.OnBackPressure(s) {
	case app.KickMember:
		// Cancel only closes the transport; its read loop runs the disconnect path.
		o.Registry.Cancel(s.ConnID)
	case app.DropFrame, app.NoAction:
	}
}

func encode(v any) (core.Frame, bool) {
	frame, err := protocol.Encode(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.orch").Msg("encode frame")
		return nil, false
	}
	return frame, true
}
