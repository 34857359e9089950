package domain

import "errors"

var (
	ErrUsernameTooLong = errors.New("username too long")
	ErrUsernameEmpty   = errors.New("username empty")
	ErrRoomNameTooLong = errors.New("room name too long")
	ErrRoomNameEmpty   = errors.New("room name empty")
	ErrPasswordTooLong = errors.New("password too long")
	ErrEmptyContent    = errors.New("empty message")
	ErrContentTooLarge = errors.New("message too large")
	ErrInvalidImage    = errors.New("image must be a data uri")
	ErrUnknownKind     = errors.New("unknown message kind")

	ErrRoomNotFound     = errors.New("room not found")
	ErrWrongPassword    = errors.New("wrong password")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotInRoom        = errors.New("not in room")
	ErrStoreUnavailable = errors.New("store unavailable")
)
