package protocol

import (
	"encoding/json"
	"errors"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

type UserList struct {
	Type  string   `json:"type"`
	Users []string `json:"users"`
}

type RoomList struct {
	Type  string        `json:"type"`
	Rooms []domain.Room `json:"rooms"`
}

type RoomCreated struct {
	Type string      `json:"type"`
	Room domain.Room `json:"room"`
}

type JoinRoomSuccess struct {
	Type     string        `json:"type"`
	RoomID   domain.RoomID `json:"roomId"`
	RoomName string        `json:"roomName"`
}

type JoinRoomError struct {
	Type    string        `json:"type"`
	RoomID  domain.RoomID `json:"roomId"`
	Reason  string        `json:"reason"`
	Message string        `json:"message"`
}

type ChatHistory struct {
	Type     string           `json:"type"`
	RoomID   domain.RoomID    `json:"roomId"`
	Messages []domain.Message `json:"messages"`
}

type ChatMessageOut struct {
	Type    string         `json:"type"`
	Message domain.Message `json:"message"`
}

type SystemMessage struct {
	Type    string        `json:"type"`
	RoomID  domain.RoomID `json:"roomId"`
	Content string        `json:"content"`
}

type RoomUserList struct {
	Type   string        `json:"type"`
	RoomID domain.RoomID `json:"roomId"`
	Users  []string      `json:"users"`
}

type WhoAmIOut struct {
	Type     string        `json:"type"`
	Username string        `json:"username,omitempty"`
	RoomID   domain.RoomID `json:"roomId,omitempty"`
	RoomName string        `json:"roomName,omitempty"`
}

type Error struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Pong struct {
	Type string `json:"type"`
}

func NewUserList(users []string) UserList {
	return UserList{Type: "userList", Users: nonNil(users)}
}

func NewRoomList(rooms []domain.Room) RoomList {
	if rooms == nil {
		rooms = []domain.Room{}
	}
	return RoomList{Type: "roomList", Rooms: rooms}
}

func NewRoomCreated(room domain.Room) RoomCreated {
	return RoomCreated{Type: "roomCreated", Room: room}
}

func NewJoinRoomSuccess(room domain.Room) JoinRoomSuccess {
	return JoinRoomSuccess{Type: "joinRoomSuccess", RoomID: room.ID, RoomName: room.Name}
}

func NewJoinRoomError(roomID domain.RoomID, err error) JoinRoomError {
	return JoinRoomError{Type: "joinRoomError", RoomID: roomID, Reason: Code(err), Message: err.Error()}
}

func NewChatHistory(roomID domain.RoomID, msgs []domain.Message) ChatHistory {
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return ChatHistory{Type: "chatHistory", RoomID: roomID, Messages: msgs}
}

func NewChatMessage(msg domain.Message) ChatMessageOut {
	return ChatMessageOut{Type: "chatMessage", Message: msg}
}

func NewSystemMessage(roomID domain.RoomID, content string) SystemMessage {
	return SystemMessage{Type: "systemMessage", RoomID: roomID, Content: content}
}

func NewRoomUserList(roomID domain.RoomID, users []string) RoomUserList {
	return RoomUserList{Type: "roomUserList", RoomID: roomID, Users: nonNil(users)}
}

func NewWhoAmI(username string, roomID domain.RoomID, roomName string) WhoAmIOut {
	return WhoAmIOut{Type: "whoami", Username: username, RoomID: roomID, RoomName: roomName}
}

func NewError(err error) Error {
	return Error{Type: "error", Code: Code(err), Message: err.Error()}
}

func NewPong() Pong {
	return Pong{Type: "pong"}
}

// Code maps an error onto the stable reason string clients switch on.
func Code(err error) string {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		return "room_not_found"
	case errors.Is(err, domain.ErrWrongPassword):
		return "wrong_password"
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "not_authenticated"
	case errors.Is(err, domain.ErrNotInRoom):
		return "not_in_room"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrBadPayload), errors.Is(err, ErrUnknownType):
		return "bad_payload"
	case errors.Is(err, domain.ErrUsernameEmpty),
		errors.Is(err, domain.ErrUsernameTooLong),
		errors.Is(err, domain.ErrRoomNameEmpty),
		errors.Is(err, domain.ErrRoomNameTooLong),
		errors.Is(err, domain.ErrPasswordTooLong),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrContentTooLarge),
		errors.Is(err, domain.ErrInvalidImage),
		errors.Is(err, domain.ErrUnknownKind):
		return "invalid_input"
	default:
		return "internal"
	}
}

// ErrRateLimited is reported when a connection sends chat frames too fast.
var ErrRateLimited = errors.New("rate limited")

// Encode marshals an outbound frame.
func Encode(v any) (core.Frame, error) {
	return json.Marshal(v)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
