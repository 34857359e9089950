package signal

import (
	"context"

	"github.com/dkeye/Chat/internal/domain"
	"github.com/dkeye/Chat/internal/protocol"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleLogin(ctx context.Context, cid domain.ConnID, m protocol.Login) error {
	log.Info().Str("module", "signal").Str("cid", string(cid)).Str("name", m.Username).Str("room_hint", string(m.RoomHint)).Msg("login")
	return ctl.Orch.Login(ctx, cid, m.Username, m.RoomHint)
}

func (ctl *SignalWSController) handleWhoAmI(ctx context.Context, cid domain.ConnID) {
	ctl.Orch.WhoAmI(ctx, cid)
}
