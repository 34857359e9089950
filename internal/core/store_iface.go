package core

//go:generate mockgen -source=store_iface.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"

	"github.com/dkeye/Chat/internal/domain"
)

// DefaultHistoryLimit is how many messages a join replays.
const DefaultHistoryLimit = 50

// RoomStore is the room registry the coordinator talks to.
// Implementations never surface backend outages; see store.Rooms.
type RoomStore interface {
	Create(ctx context.Context, name, creator, password string) (domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	Get(ctx context.Context, id domain.RoomID) (domain.Room, error)
	CheckPasswordAndRecordMember(ctx context.Context, id domain.RoomID, username, password string) error
}

// MessageStore is the per-room append log.
type MessageStore interface {
	Append(ctx context.Context, roomID domain.RoomID, author, content string, kind domain.Kind) (domain.Message, error)
	Recent(ctx context.Context, roomID domain.RoomID, limit int) ([]domain.Message, error)
}

// UserStateStore keeps the last room per username across connections.
type UserStateStore interface {
	Get(ctx context.Context, username string) (domain.RoomID, bool, error)
	Set(ctx context.Context, username string, roomID domain.RoomID) error
}

// RoomBackend is a raw room persistence layer (memory, sqlite).
type RoomBackend interface {
	Put(ctx context.Context, room domain.Room) error
	Get(ctx context.Context, id domain.RoomID) (domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	AddUser(ctx context.Context, id domain.RoomID, username string) error
}

// MessageBackend is a raw message persistence layer (memory, sqlite).
type MessageBackend interface {
	Save(ctx context.Context, msg domain.Message) error
	Recent(ctx context.Context, roomID domain.RoomID, limit int) ([]domain.Message, error)
}
