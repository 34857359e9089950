package store

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/core/mocks"
	"github.com/dkeye/Chat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMessagesAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	s := NewMessages(nil, NewMemoryMessages(0))

	var ids []domain.ChatID
	for i := range 3 {
		msg, err := s.Append(ctx, "r1", "alice", fmt.Sprintf("hello %d", i), domain.KindText)
		require.NoError(t, err)
		assert.NotEmpty(t, msg.ChatID)
		assert.Equal(t, time.UTC, msg.Timestamp.Location())
		ids = append(ids, msg.ChatID)
	}

	got, err := s.Recent(ctx, "r1", 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, m := range got {
		assert.Equal(t, ids[i], m.ChatID)
	}
}

func TestMessagesFallBackAndMerge(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	durable := mocks.NewMockMessageBackend(ctrl)
	s := NewMessages(durable, NewMemoryMessages(0))

	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return t0.Add(time.Minute) }

	durable.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errBackendDown)
	saved, err := s.Append(ctx, "r1", "bob", "while db down", domain.KindText)
	require.NoError(t, err)

	stored := msgAt("db-1", "r1", t0)
	durable.EXPECT().Recent(gomock.Any(), domain.RoomID("r1"), core.DefaultHistoryLimit).Return([]domain.Message{stored}, nil)

	got, err := s.Recent(ctx, "r1", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, stored.ChatID, got[0].ChatID)
	assert.Equal(t, saved.ChatID, got[1].ChatID)
}

func TestMessagesRecentSurvivesBackendError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	durable := mocks.NewMockMessageBackend(ctrl)
	memory := NewMemoryMessages(0)
	s := NewMessages(durable, memory)

	require.NoError(t, memory.Save(ctx, msgAt("m1", "r1", time.Now())))
	durable.EXPECT().Recent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errBackendDown)

	got, err := s.Recent(ctx, "r1", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestMergeRecentDedupsAndOrders(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := msgAt("a", "r1", t0)
	b := msgAt("b", "r1", t0.Add(time.Second))
	c := msgAt("c", "r1", t0.Add(2*time.Second))
	tie := msgAt("tie", "r1", t0.Add(time.Second))

	got := MergeRecent(10, []domain.Message{c, a, b}, []domain.Message{b, tie, a})
	assert.Equal(t, []domain.ChatID{"a", "b", "tie", "c"}, chatIDs(got))

	got = MergeRecent(2, []domain.Message{a, b, c})
	assert.Equal(t, []domain.ChatID{"b", "c"}, chatIDs(got))
}

// Any split of a log into two overlapping sources merges back to the log.
func TestMergeRecentProperty(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := rand.New(rand.NewPCG(1, 2))

	for round := range 200 {
		n := r.IntN(30)
		log := make([]domain.Message, n)
		for i := range log {
			log[i] = msgAt(fmt.Sprintf("%d-%d", round, i), "r1", t0.Add(time.Duration(i)*time.Millisecond))
		}
		var left, right []domain.Message
		for _, m := range log {
			switch r.IntN(3) {
			case 0:
				left = append(left, m)
			case 1:
				right = append(right, m)
			default:
				left = append(left, m)
				right = append(right, m)
			}
		}
		r.Shuffle(len(right), func(i, j int) { right[i], right[j] = right[j], right[i] })

		limit := r.IntN(35)
		got := MergeRecent(limit, left, right)

		want := log
		if limit > 0 && len(want) > limit {
			want = want[len(want)-limit:]
		}
		require.Equal(t, chatIDs(want), chatIDs(got), "round %d", round)
	}
}

func chatIDs(msgs []domain.Message) []domain.ChatID {
	out := make([]domain.ChatID, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.ChatID)
	}
	return out
}
