package domain

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

const MaxRoomNameLen = 36

type RoomID string

// Room is registry meta. Users is advisory; live presence comes from connections.
type Room struct {
	ID           RoomID    `json:"roomId"`
	Name         string    `json:"roomName"`
	AdminID      string    `json:"adminId,omitempty"`
	Private      bool      `json:"private"`
	Users        []string  `json:"users"`
	CreatedAt    time.Time `json:"createdAt"`
	PasswordHash string    `json:"-"`
}

// NewRoomName trims and validates a room display name.
func NewRoomName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrRoomNameEmpty
	}
	if utf8.RuneCountInString(name) > MaxRoomNameLen {
		return "", ErrRoomNameTooLong
	}
	return name, nil
}

// HasUser reports whether username is in the advisory member list.
func (r *Room) HasUser(username string) bool {
	return slices.Contains(r.Users, username)
}

// Clone returns a copy that shares no slices with r.
func (r Room) Clone() Room {
	r.Users = slices.Clone(r.Users)
	return r
}
