// Package domain contains entity without logic, just meta-data
package domain

import (
	"errors"
	"strings"
)

const MaxRoomNameLen = 64

var ErrInvalidRoomName = errors.New("invalid room name")

// RoomName is the operator-supplied room identifier. Free text, trimmed,
// non-empty.
type RoomName string

// ParseRoomName validates raw user input. The relay never sees an empty
// name; validation happens on the client before joinRoom is sent.
func ParseRoomName(raw string) (RoomName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidRoomName
	}
	if len(trimmed) > MaxRoomNameLen {
		trimmed = trimmed[:MaxRoomNameLen]
	}
	return RoomName(trimmed), nil
}
