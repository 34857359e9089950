package store

import (
	"context"
	"testing"

	"github.com/dkeye/Chat/internal/core/mocks"
	"github.com/dkeye/Chat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserStateReadsDurableAfterRestart(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	durable := mocks.NewMockUserStateStore(ctrl)
	s := NewUserState(durable, nil)

	durable.EXPECT().Get(gomock.Any(), "alice").Return(domain.RoomID("r1"), true, nil)
	id, ok, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.RoomID("r1"), id)
}

func TestUserStateMemoryShadowsDurable(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	durable := mocks.NewMockUserStateStore(ctrl)
	s := NewUserState(durable, nil)

	durable.EXPECT().Set(gomock.Any(), "alice", domain.RoomID("")).Return(errBackendDown)
	require.NoError(t, s.Set(ctx, "alice", ""))

	// The durable copy may still say r1; the cleared memory entry wins.
	_, ok, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserStateDurableErrorIsNotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	durable := mocks.NewMockUserStateStore(ctrl)
	s := NewUserState(durable, nil)

	durable.EXPECT().Get(gomock.Any(), "bob").Return(domain.RoomID(""), false, errBackendDown)
	_, ok, err := s.Get(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, ok)
}
