package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Messages implements core.MessageStore with the same durable-then-memory strategy as Rooms.
type Messages struct {
	durable core.MessageBackend
	memory  *MemoryMessages
	now     func() time.Time
}

// NewMessages wires the store. durable may be nil (degraded mode).
func NewMessages(durable core.MessageBackend, memory *MemoryMessages) *Messages {
	if memory == nil {
		memory = NewMemoryMessages(0)
	}
	return &Messages{durable: durable, memory: memory, now: time.Now}
}

func (s *Messages) Append(ctx context.Context, roomID domain.RoomID, author, content string, kind domain.Kind) (domain.Message, error) {
	msg := domain.Message{
		ChatID:    domain.ChatID(uuid.NewString()),
		RoomID:    roomID,
		UserID:    author,
		Content:   content,
		Kind:      kind,
		Timestamp: s.now().UTC(),
	}
	if s.durable != nil {
		err := s.durable.Save(ctx, msg)
		if err == nil {
			return msg, nil
		}
		s.degraded("save", roomID, err)
	}
	_ = s.memory.Save(ctx, msg)
	return msg, nil
}

func (s *Messages) Recent(ctx context.Context, roomID domain.RoomID, limit int) ([]domain.Message, error) {
	if limit <= 0 {
		limit = core.DefaultHistoryLimit
	}
	memory, _ := s.memory.Recent(ctx, roomID, limit)
	if s.durable == nil {
		return memory, nil
	}
	durable, err := s.durable.Recent(ctx, roomID, limit)
	if err != nil {
		s.degraded("recent", roomID, err)
	}
	return MergeRecent(limit, durable, memory), nil
}

func (s *Messages) degraded(op string, roomID domain.RoomID, err error) {
	log.Warn().
		Err(fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)).
		Str("module", "app.store").
		Str("op", op).
		Str("room_id", string(roomID)).
		Msg("message backend failed, using memory")
}

// MergeRecent dedups by ChatID (first source wins), sorts by timestamp
// keeping source order for ties, and keeps the newest limit messages.
func MergeRecent(limit int, sources ...[]domain.Message) []domain.Message {
	var n int
	for _, src := range sources {
		n += len(src)
	}
	out := make([]domain.Message, 0, n)
	seen := make(map[domain.ChatID]struct{}, n)
	for _, src := range sources {
		for _, m := range src {
			if _, dup := seen[m.ChatID]; dup {
				continue
			}
			seen[m.ChatID] = struct{}{}
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Message) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}
