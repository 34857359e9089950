package orch

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/dkeye/Chat/internal/app"
	"github.com/dkeye/Chat/internal/app/store"
	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var errFull = errors.New("buffer full")

type frame map[string]any

// fakeConn records every frame it is given.
type fakeConn struct {
	mu       sync.Mutex
	frames   []frame
	full     bool
	canceled int
}

func (c *fakeConn) TrySend(f core.Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.full {
		return errFull
	}
	var m frame
	if err := json.Unmarshal(f, &m); err != nil {
		return err
	}
	c.frames = append(c.frames, m)
	return nil
}

func (c *fakeConn) Close() {}

func (c *fakeConn) setFull(full bool) {
	c.mu.Lock()
	c.full = full
	c.mu.Unlock()
}

func (c *fakeConn) all(typ string) []frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []frame
	for _, f := range c.frames {
		if f["type"] == typ {
			out = append(out, f)
		}
	}
	return out
}

func (c *fakeConn) last(typ string) frame {
	fs := c.all(typ)
	if len(fs) == 0 {
		return nil
	}
	return fs[len(fs)-1]
}

func (c *fakeConn) types() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.frames))
	for _, f := range c.frames {
		out = append(out, f["type"].(string))
	}
	return out
}

func (c *fakeConn) notices() []string {
	var out []string
	for _, f := range c.all("systemMessage") {
		out = append(out, f["content"].(string))
	}
	return out
}

func (c *fakeConn) chatContents() []string {
	var out []string
	for _, f := range c.all("chatMessage") {
		out = append(out, f["message"].(map[string]any)["content"].(string))
	}
	return out
}

func (c *fakeConn) reset() {
	c.mu.Lock()
	c.frames = nil
	c.mu.Unlock()
}

func (c *fakeConn) cancelCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canceled
}

func strs(v any) []string {
	raw, _ := v.([]any)
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		out = append(out, s.(string))
	}
	return out
}

type harness struct {
	t     *testing.T
	o     *Orchestrator
	life  *Lifecycle
	rooms *store.Rooms
	msgs  *store.Messages
	users *store.UserState
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	rooms := store.NewRooms(nil, nil, store.NewPasswordHasher(bcrypt.MinCost))
	msgs := store.NewMessages(nil, nil)
	users := store.NewUserState(nil, nil)
	o := &Orchestrator{
		Registry: app.NewRegistry(rooms, users),
		Rooms:    rooms,
		Messages: msgs,
		Policy:   app.SimplePolicy{},
	}
	return &harness{t: t, o: o, life: NewLifecycle(o), rooms: rooms, msgs: msgs, users: users}
}

func (h *harness) connect(cid domain.ConnID) *fakeConn {
	c := &fakeConn{}
	h.life.OnConnect(cid, c, func() {
		c.mu.Lock()
		c.canceled++
		c.mu.Unlock()
	})
	return c
}
