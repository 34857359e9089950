package domain

import (
	"strings"
	"time"
)

// MaxContentLen bounds a single message; images travel as data URIs.
const MaxContentLen = 8 << 20

type ChatID string

type Kind string

const (
	KindText     Kind = "text"
	KindImage    Kind = "image"
	KindEmoticon Kind = "emoticon"
)

// ParseKind maps a wire value to a Kind. Empty means text; "emoji" is an older client's name for emoticon.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "text":
		return KindText, nil
	case "image":
		return KindImage, nil
	case "emoticon", "emoji":
		return KindEmoticon, nil
	default:
		return "", ErrUnknownKind
	}
}

// Message is immutable once stored.
type Message struct {
	ChatID    ChatID    `json:"chatId"`
	RoomID    RoomID    `json:"roomId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Kind      Kind      `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidateContent checks content against kind.
func ValidateContent(content string, kind Kind) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if len(content) > MaxContentLen {
		return ErrContentTooLarge
	}
	if kind == KindImage && !strings.HasPrefix(content, "data:image/") {
		return ErrInvalidImage
	}
	return nil
}
