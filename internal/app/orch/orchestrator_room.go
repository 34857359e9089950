package orch

import (
	"context"
	"fmt"

	"github.com/dkeye/Chat/internal/domain"
	"github.com/dkeye/Chat/internal/protocol"
	"github.com/rs/zerolog/log"
)

// Login binds a username to the connection, tells everyone the new user
// list and, when the registry resolves a room, restores the connection into it.
func (o *Orchestrator) Login(ctx context.Context, cid domain.ConnID, username string, hint domain.RoomID) error {
	name, err := domain.NewUsername(username)
	if err != nil {
		return err
	}
	before, ok := o.Registry.Session(cid)
	if !ok {
		return nil
	}

	roomID, restore := o.Registry.Login(ctx, cid, name, hint)
	o.announceGlobal()
	if before.RoomID != "" && before.Username != name {
		o.withRoom(before.RoomID, func() { o.announce(before.RoomID, "") })
	}
	if restore {
		o.restore(ctx, cid, roomID)
	}
	return nil
}

// restore re-enters a room without the password check. A private room is
// only restored for users it already recorded as members; anything else
// leaves the connection authenticated and outside any room.
func (o *Orchestrator) restore(ctx context.Context, cid domain.ConnID, roomID domain.RoomID) {
	room, err := o.Rooms.Get(ctx, roomID)
	if err != nil {
		log.Info().Err(err).Str("module", "app.orch").Str("cid", string(cid)).Str("room_id", string(roomID)).Msg("restore skipped")
		return
	}
	s, ok := o.Registry.Session(cid)
	if !ok || s.Username == "" {
		return
	}
	if room.Private && !room.HasUser(s.Username) {
		log.Info().Str("module", "app.orch").Str("cid", string(cid)).Str("room_id", string(roomID)).Msg("restore refused for non-member")
		return
	}
	log.Info().Str("module", "app.orch").Str("cid", string(cid)).Str("room_id", string(roomID)).Msg("restoring room")
	o.enter(ctx, cid, room)
}

// AllRooms lists every known room; store errors degrade to what was readable.
func (o *Orchestrator) AllRooms(ctx context.Context) []domain.Room {
	rooms, err := o.Rooms.List(ctx)
	if err != nil {
		log.Warn().Err(err).Str("module", "app.orch").Msg("list rooms")
	}
	return rooms
}

func (o *Orchestrator) ListRooms(ctx context.Context, cid domain.ConnID) {
	o.reply(cid, protocol.NewRoomList(o.AllRooms(ctx)))
}

// CreateRoom registers a room and announces it to every connection.
// The creator is not moved into it.
func (o *Orchestrator) CreateRoom(ctx context.Context, cid domain.ConnID, name, password string) (domain.Room, error) {
	s, ok := o.Registry.Session(cid)
	if !ok || s.Username == "" {
		return domain.Room{}, domain.ErrNotAuthenticated
	}
	room, err := o.Rooms.Create(ctx, name, s.Username, password)
	if err != nil {
		return domain.Room{}, err
	}
	log.Info().Str("module", "app.orch").Str("cid", string(cid)).Str("room_id", string(room.ID)).Str("name", room.Name).Msg("room created")
	o.broadcastAll(protocol.NewRoomCreated(room))
	return room, nil
}

// Join validates the password and moves the connection into roomID,
// leaving its previous room first.
func (o *Orchestrator) Join(ctx context.Context, cid domain.ConnID, roomID domain.RoomID, password string) error {
	s, ok := o.Registry.Session(cid)
	if !ok {
		return nil
	}
	if s.Username == "" {
		return domain.ErrNotAuthenticated
	}
	if err := o.Rooms.CheckPasswordAndRecordMember(ctx, roomID, s.Username, password); err != nil {
		return err
	}
	room, err := o.Rooms.Get(ctx, roomID)
	if err != nil {
		return err
	}
	o.enter(ctx, cid, room)
	return nil
}

// enter holds the room lock from the membership change until history has
// been replied, so a concurrent chat message reaches the joiner exactly
// once: in history or as a live broadcast.
func (o *Orchestrator) enter(ctx context.Context, cid domain.ConnID, room domain.Room) {
	var (
		prev     domain.RoomID
		username string
		moved    bool
		entered  bool
	)
	o.withRoom(room.ID, func() {
		prev, moved = o.Registry.SetRoom(ctx, cid, room.ID)
		if !moved {
			return
		}
		if s, ok := o.Registry.Session(cid); ok {
			username = s.Username
		}
		o.reply(cid, protocol.NewJoinRoomSuccess(room))

		history, err := o.Messages.Recent(ctx, room.ID, o.historyLimit())
		if err != nil {
			log.Warn().Err(err).Str("module", "app.orch").Str("room_id", string(room.ID)).Msg("history")
		}
		s, ok := o.Registry.Session(cid)
		if !ok || s.RoomID != room.ID {
			return
		}
		username, entered = s.Username, true
		o.reply(cid, protocol.NewChatHistory(room.ID, history))

		notice := ""
		if prev != room.ID {
			notice = fmt.Sprintf("%s joined the room.", username)
		}
		o.announce(room.ID, notice)
	})
	if entered {
		log.Info().Str("module", "app.orch").Str("cid", string(cid)).Str("room_id", string(room.ID)).Msg("joined room")
	}

	// The previous room lost this connection as soon as SetRoom ran, even if
	// the connection went away before the join finished.
	if moved && prev != "" && prev != room.ID {
		o.withRoom(prev, func() {
			o.announce(prev, fmt.Sprintf("%s left the room.", username))
		})
	}
}

// Leave takes the connection out of its room. Leaving a room the
// connection is not in does nothing and emits nothing.
func (o *Orchestrator) Leave(ctx context.Context, cid domain.ConnID, roomID domain.RoomID) error {
	s, ok := o.Registry.Session(cid)
	if !ok || s.RoomID == "" {
		return nil
	}
	if roomID != "" && roomID != s.RoomID {
		return nil
	}
	o.withRoom(s.RoomID, func() {
		prev, ok := o.Registry.SetRoom(ctx, cid, "")
		if !ok || prev == "" {
			return
		}
		o.announce(prev, fmt.Sprintf("%s left the room.", s.Username))
	})
	log.Info().Str("module", "app.orch").Str("cid", string(cid)).Str("room_id", string(s.RoomID)).Msg("left room")
	return nil
}
