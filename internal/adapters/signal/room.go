package signal

import (
	"context"

	"github.com/dkeye/Chat/internal/domain"
	"github.com/dkeye/Chat/internal/protocol"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleGetRooms(ctx context.Context, cid domain.ConnID) {
	ctl.Orch.ListRooms(ctx, cid)
}

func (ctl *SignalWSController) handleCreateRoom(ctx context.Context, cid domain.ConnID, m protocol.CreateRoom) error {
	_, err := ctl.Orch.CreateRoom(ctx, cid, m.Name, m.Password)
	return err
}

// handleJoin reports failures as joinRoomError so clients can tell a
// wrong password from a generic error.
func (ctl *SignalWSController) handleJoin(ctx context.Context, cid domain.ConnID, m protocol.JoinRoom) {
	log.Info().Str("module", "signal").Str("cid", string(cid)).Str("room_id", string(m.RoomID)).Msg("join")
	if err := ctl.Orch.Join(ctx, cid, m.RoomID, m.Password); err != nil {
		log.Info().Err(err).Str("module", "signal").Str("cid", string(cid)).Str("room_id", string(m.RoomID)).Msg("join refused")
		ctl.Orch.Reply(cid, protocol.NewJoinRoomError(m.RoomID, err))
	}
}

// handleLeave exits the current room; the connection stays open.
func (ctl *SignalWSController) handleLeave(ctx context.Context, cid domain.ConnID, m protocol.LeaveRoom) error {
	log.Info().Str("module", "signal").Str("cid", string(cid)).Msg("leave")
	return ctl.Orch.Leave(ctx, cid, m.RoomID)
}
