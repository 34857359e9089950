package signal

import (
	"context"

	"github.com/dkeye/Chat/internal/domain"
	"github.com/dkeye/Chat/internal/protocol"
	"github.com/rs/zerolog/log"
)

// dispatch runs one decoded frame. Frames of a connection are handled
// one at a time on its read pump.
func (ctl *SignalWSController) dispatch(ctx context.Context, cid domain.ConnID, msg protocol.Inbound) {
	var err error
	switch m := msg.(type) {
	case protocol.Login:
		err = ctl.handleLogin(ctx, cid, m)
	case protocol.WhoAmI:
		ctl.handleWhoAmI(ctx, cid)
	case protocol.GetRooms:
		ctl.handleGetRooms(ctx, cid)
	case protocol.CreateRoom:
		err = ctl.handleCreateRoom(ctx, cid, m)
	case protocol.JoinRoom:
		ctl.handleJoin(ctx, cid, m)
	case protocol.LeaveRoom:
		err = ctl.handleLeave(ctx, cid, m)
	case protocol.ChatMessage:
		err = ctl.handleChat(ctx, cid, m)
	case protocol.Ping:
		ctl.handlePing(cid)
	default:
		log.Warn().Str("module", "signal").Str("cid", string(cid)).Msgf("unhandled frame %T", msg)
	}
	if err != nil {
		log.Info().Err(err).Str("module", "signal").Str("cid", string(cid)).Str("code", protocol.Code(err)).Msg("request failed")
		ctl.Orch.Reply(cid, protocol.NewError(err))
	}
}

func (ctl *SignalWSController) handlePing(cid domain.ConnID) {
	ctl.Orch.Reply(cid, protocol.NewPong())
}

func (ctl *SignalWSController) handleChat(ctx context.Context, cid domain.ConnID, m protocol.ChatMessage) error {
	if !ctl.Limiter.Allow(cid) {
		return protocol.ErrRateLimited
	}
	_, err := ctl.Orch.Send(ctx, cid, m.Content, m.Kind)
	return err
}
