// Package sqlite is the durable gorm backend for rooms and messages.
package sqlite

import (
	"time"

	"github.com/dkeye/Chat/internal/domain"
)

type roomRow struct {
	ID           string    `gorm:"primarykey;size:36"`
	Name         string    `gorm:"size:36;not null"`
	AdminID      string    `gorm:"size:36"`
	Private      bool      `gorm:"not null;default:false"`
	PasswordHash string    `gorm:"size:100"`
	CreatedAt    time.Time `gorm:"index"`
}

func (roomRow) TableName() string {
	return "rooms"
}

type memberRow struct {
	RoomID   string `gorm:"primarykey;size:36"`
	Username string `gorm:"primarykey;size:36"`
}

func (memberRow) TableName() string {
	return "room_members"
}

type messageRow struct {
	ChatID    string    `gorm:"primarykey;size:36"`
	RoomID    string    `gorm:"size:36;not null;index:idx_messages_room_ts"`
	UserID    string    `gorm:"size:36;not null"`
	Content   string    `gorm:"not null"`
	Kind      string    `gorm:"size:16;not null"`
	Timestamp time.Time `gorm:"not null;index:idx_messages_room_ts"`
}

func (messageRow) TableName() string {
	return "messages"
}

func toRoomRow(r domain.Room) roomRow {
	return roomRow{
		ID:           string(r.ID),
		Name:         r.Name,
		AdminID:      r.AdminID,
		Private:      r.Private,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

func (r roomRow) toDomain(users []string) domain.Room {
	if users == nil {
		users = []string{}
	}
	return domain.Room{
		ID:           domain.RoomID(r.ID),
		Name:         r.Name,
		AdminID:      r.AdminID,
		Private:      r.Private,
		Users:        users,
		CreatedAt:    r.CreatedAt.UTC(),
		PasswordHash: r.PasswordHash,
	}
}

func toMessageRow(m domain.Message) messageRow {
	return messageRow{
		ChatID:    string(m.ChatID),
		RoomID:    string(m.RoomID),
		UserID:    m.UserID,
		Content:   m.Content,
		Kind:      string(m.Kind),
		Timestamp: m.Timestamp,
	}
}

func (m messageRow) toDomain() domain.Message {
	return domain.Message{
		ChatID:    domain.ChatID(m.ChatID),
		RoomID:    domain.RoomID(m.RoomID),
		UserID:    m.UserID,
		Content:   m.Content,
		Kind:      domain.Kind(m.Kind),
		Timestamp: m.Timestamp.UTC(),
	}
}
