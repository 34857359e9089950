package signal

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	"github.com/dkeye/Chat/internal/domain"
	"github.com/dkeye/Chat/internal/protocol"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) writePump(ctx context.Context, c *WsSignalConn) {
	ticker := time.NewTicker(ctl.opts.PingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case data, ok := <-c.send:
			if !ok {
				_ = c.conn.SetWriteDeadline(time.Now().Add(ctl.opts.WriteWait))
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(ctl.opts.WriteWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(ctl.opts.WriteWait)); err != nil {
				log.Warn().Err(err).Str("module", "signal").Msg("writePump ping")
				return
			}
		}
	}
}

// readPump owns the connection's lifetime: whatever ends it, the
// disconnect path runs once here.
func (ctl *SignalWSController) readPump(ctx context.Context, cid domain.ConnID, c *WsSignalConn, stop func(), username string) {
	defer func() {
		log.Info().Str("module", "signal").Str("cid", string(cid)).Msg("readPump closing")
		stop()
		ctl.Limiter.Forget(cid)
		ctl.Lifecycle.OnDisconnect(context.WithoutCancel(ctx), cid)
	}()

	c.conn.SetReadLimit(ctl.opts.ReadLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(ctl.opts.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(ctl.opts.PongWait))
	})

	if username != "" {
		ctl.dispatch(ctx, cid, protocol.Login{Username: username})
	}

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			logReadError(cid, err)
			return
		}
		// Any client frame proves liveness, not only pongs.
		_ = c.conn.SetReadDeadline(time.Now().Add(ctl.opts.PongWait))
		ctl.handleSignal(ctx, cid, data)
	}
}

func (ctl *SignalWSController) handleSignal(ctx context.Context, cid domain.ConnID, data []byte) {
	msg, err := protocol.Decode(data)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("cid", string(cid)).Msg("bad frame")
		ctl.Orch.Reply(cid, protocol.NewError(err))
		return
	}
	ctl.dispatch(ctx, cid, msg)
}

func logReadError(cid domain.ConnID, err error) {
	switch {
	case errors.Is(err, websocket.ErrReadLimit):
		log.Warn().Err(err).Str("module", "signal").Str("cid", string(cid)).Msg("frame too large")
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived),
		errors.Is(err, io.EOF), errors.Is(err, net.ErrClosed):
		log.Info().Str("module", "signal").Str("cid", string(cid)).Msg("client closed")
	default:
		log.Warn().Err(err).Str("module", "signal").Str("cid", string(cid)).Msg("readPump read error")
	}
}
