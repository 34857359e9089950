package orch

import (
	"context"

	"github.com/dkeye/Chat/internal/domain"
	"github.com/dkeye/Chat/internal/protocol"
	"github.com/rs/zerolog/log"
)

// Send stores a chat message from the connection's current room and
// relays it to every member, the author included. Append and broadcast
// share the room lock so members see messages in stored order.
func (o *Orchestrator) Send(ctx context.Context, cid domain.ConnID, content string, kind domain.Kind) (domain.Message, error) {
	s, ok := o.Registry.Session(cid)
	if !ok || s.Username == "" {
		return domain.Message{}, domain.ErrNotAuthenticated
	}
	if s.RoomID == "" {
		return domain.Message{}, domain.ErrNotInRoom
	}
	if err := domain.ValidateContent(content, kind); err != nil {
		return domain.Message{}, err
	}

	var (
		msg domain.Message
		err error
	)
	o.withRoom(s.RoomID, func() {
		msg, err = o.Messages.Append(ctx, s.RoomID, s.Username, content, kind)
		if err != nil {
			return
		}
		o.broadcastRoom(s.RoomID, protocol.NewChatMessage(msg))
	})
	if err != nil {
		log.Error().Err(err).Str("module", "app.orch").Str("cid", string(cid)).Str("room_id", string(s.RoomID)).Msg("append message")
		return domain.Message{}, err
	}
	return msg, nil
}

// WhoAmI replies with the connection's username and room.
func (o *Orchestrator) WhoAmI(ctx context.Context, cid domain.ConnID) {
	s, ok := o.Registry.Session(cid)
	if !ok {
		return
	}
	var roomName string
	if s.RoomID != "" {
		if room, err := o.Rooms.Get(ctx, s.RoomID); err == nil {
			roomName = room.Name
		}
	}
	o.reply(cid, protocol.NewWhoAmI(s.Username, s.RoomID, roomName))
}

// Reply sends v to a single connection.
func (o *Orchestrator) Reply(cid domain.ConnID, v any) {
	o.reply(cid, v)
}
