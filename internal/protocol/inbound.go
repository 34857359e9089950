// Package protocol is the closed set of frames exchanged with clients.
// Every frame is a JSON object whose "type" field selects the variant.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dkeye/Chat/internal/domain"
)

var (
	ErrBadPayload  = errors.New("bad payload")
	ErrUnknownType = errors.New("unknown frame type")
)

// Inbound frame types.
const (
	TypeLogin       = "login"
	TypeGetRooms    = "getRooms"
	TypeCreateRoom  = "createRoom"
	TypeJoinRoom    = "joinRoom"
	TypeLeaveRoom   = "leaveRoom"
	TypeChatMessage = "chatMessage"
	TypeChatImage   = "chatImage"
	TypeWhoAmI      = "whoami"
	TypePing        = "ping"
)

// Inbound is a validated client request; it is one of the types below.
type Inbound interface {
	inbound()
}

type Login struct {
	Username string
	RoomHint domain.RoomID
}

type GetRooms struct{}

type CreateRoom struct {
	Name     string
	Password string
}

type JoinRoom struct {
	RoomID   domain.RoomID
	Password string
}

// LeaveRoom with an empty RoomID leaves whatever room the connection is in.
type LeaveRoom struct {
	RoomID domain.RoomID
}

// ChatMessage also carries chatImage frames, with Kind set to image.
type ChatMessage struct {
	Content string
	Kind    domain.Kind
}

type WhoAmI struct{}

type Ping struct{}

func (Login) inbound()       {}
func (GetRooms) inbound()    {}
func (CreateRoom) inbound()  {}
func (JoinRoom) inbound()    {}
func (LeaveRoom) inbound()   {}
func (ChatMessage) inbound() {}
func (WhoAmI) inbound()      {}
func (Ping) inbound()        {}

// wire is the union of all inbound fields.
type wire struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	RoomID   string `json:"roomId"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Content  string `json:"content"`
	Kind     string `json:"kind"`
	Image    string `json:"image"`
}

// Decode parses and validates one client frame.
func Decode(data []byte) (Inbound, error) {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPayload, err)
	}

	switch w.Type {
	case TypeLogin:
		name, err := domain.NewUsername(w.Username)
		if err != nil {
			return nil, err
		}
		return Login{Username: name, RoomHint: domain.RoomID(strings.TrimSpace(w.RoomID))}, nil
	case TypeGetRooms:
		return GetRooms{}, nil
	case TypeCreateRoom:
		name, err := domain.NewRoomName(w.Name)
		if err != nil {
			return nil, err
		}
		return CreateRoom{Name: name, Password: w.Password}, nil
	case TypeJoinRoom:
		id := strings.TrimSpace(w.RoomID)
		if id == "" {
			return nil, fmt.Errorf("%w: missing roomId", ErrBadPayload)
		}
		return JoinRoom{RoomID: domain.RoomID(id), Password: w.Password}, nil
	case TypeLeaveRoom:
		return LeaveRoom{RoomID: domain.RoomID(strings.TrimSpace(w.RoomID))}, nil
	case TypeChatMessage:
		kind, err := domain.ParseKind(w.Kind)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateContent(w.Content, kind); err != nil {
			return nil, err
		}
		return ChatMessage{Content: w.Content, Kind: kind}, nil
	case TypeChatImage:
		if err := domain.ValidateContent(w.Image, domain.KindImage); err != nil {
			return nil, err
		}
		return ChatMessage{Content: w.Image, Kind: domain.KindImage}, nil
	case TypeWhoAmI:
		return WhoAmI{}, nil
	case TypePing:
		return Ping{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, w.Type)
	}
}
