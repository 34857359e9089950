package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dkeye/Chat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msgAt(id string, room domain.RoomID, at time.Time) domain.Message {
	return domain.Message{ChatID: domain.ChatID(id), RoomID: room, UserID: "alice", Content: id, Kind: domain.KindText, Timestamp: at}
}

func TestMemoryMessagesCapAndDedup(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryMessages(3)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := range 5 {
		require.NoError(t, m.Save(ctx, msgAt(fmt.Sprintf("m%d", i), "r1", base.Add(time.Duration(i)*time.Second))))
	}
	require.NoError(t, m.Save(ctx, msgAt("m4", "r1", base)))

	got, err := m.Recent(ctx, "r1", 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, domain.ChatID("m2"), got[0].ChatID)
	assert.Equal(t, domain.ChatID("m4"), got[2].ChatID)

	got, _ = m.Recent(ctx, "r1", 2)
	assert.Equal(t, []domain.ChatID{"m3", "m4"}, []domain.ChatID{got[0].ChatID, got[1].ChatID})

	got, _ = m.Recent(ctx, "other", 10)
	assert.Empty(t, got)
}

func TestMemoryRoomsKeepCreationOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRooms()
	require.NoError(t, m.Put(ctx, domain.Room{ID: "b", Name: "second"}))
	require.NoError(t, m.Put(ctx, domain.Room{ID: "a", Name: "first"}))
	require.NoError(t, m.AddUser(ctx, "a", "alice"))
	require.NoError(t, m.AddUser(ctx, "a", "alice"))

	rooms, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, domain.RoomID("b"), rooms[0].ID)
	assert.Equal(t, []string{"alice"}, rooms[1].Users)

	assert.ErrorIs(t, m.AddUser(ctx, "missing", "alice"), domain.ErrRoomNotFound)
	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestMemoryUserStateClearIsKnown(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryUserState()

	_, known := m.lookup("alice")
	assert.False(t, known)

	require.NoError(t, m.Set(ctx, "alice", "r1"))
	id, ok, err := m.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.RoomID("r1"), id)

	require.NoError(t, m.Set(ctx, "alice", ""))
	_, ok, _ = m.Get(ctx, "alice")
	assert.False(t, ok)
	_, known = m.lookup("alice")
	assert.True(t, known)
}
