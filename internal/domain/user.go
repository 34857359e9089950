// Package domain contains entity without logic, just meta-data
package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxUsernameLen = 36
)

type ConnID string

// NewUsername trims and validates a self-declared display name.
// Names are not unique: several connections may share one (multi-tab).
func NewUsername(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrUsernameEmpty
	}
	if utf8.RuneCountInString(name) > MaxUsernameLen {
		return "", ErrUsernameTooLong
	}
	return name, nil
}

// Presence is the deduplicated view of one username across its live connections.
// Conns stays server-side; clients only see the count.
type Presence struct {
	Username    string   `json:"username"`
	Conns       []ConnID `json:"-"`
	Connections int      `json:"connections"`
	RoomID      RoomID   `json:"roomId,omitempty"`
}
