package orch

import (
	"context"
	"fmt"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
	"github.com/rs/zerolog/log"
)

// Lifecycle turns transport connect/disconnect into registry changes
// and the presence updates they imply.
type Lifecycle struct {
	Orch *Orchestrator
}

func NewLifecycle(o *Orchestrator) *Lifecycle {
	return &Lifecycle{Orch: o}
}

// OnConnect registers an anonymous session. Nothing is emitted until login.
func (l *Lifecycle) OnConnect(cid domain.ConnID, conn core.SignalConnection, cancel context.CancelFunc) {
	l.Orch.Registry.Register(cid, conn, cancel)
}

// OnDisconnect removes the session and tells the room and everyone else.
// Persisted user state is kept so the next login can restore the room.
func (l *Lifecycle) OnDisconnect(_ context.Context, cid domain.ConnID) {
	removed := l.Orch.Registry.Unregister(cid)
	if !removed.Found {
		return
	}
	log.Info().
		Str("module", "app.orch").
		Str("cid", string(cid)).
		Str("username", removed.Username).
		Str("room_id", string(removed.RoomID)).
		Msg("disconnected")

	if removed.Username == "" {
		return
	}
	if removed.RoomID != "" {
		o := l.Orch
		o.withRoom(removed.RoomID, func() {
			o.announce(removed.RoomID, fmt.Sprintf("%s disconnected.", removed.Username))
		})
	}
	l.Orch.announceGlobal()
}
