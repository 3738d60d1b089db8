package proto

import (
	"ctchen222/ox-game/internal/game"
	"ctchen222/ox-game/internal/validator"
	"encoding/json"
	"errors"
	"fmt"
)

// Client message types.
const (
	TypePut   = "put"
	TypeReset = "reset"
)

// Server message types.
const (
	TypeRender = "render"
	TypeError  = "error"
)

var ErrUnknownMessage = errors.New("unknown message type")

// ClientToServerMessage represents a message from the browser to the server.
type ClientToServerMessage struct {
	Type     string `json:"type" validate:"required,oneof=put reset"`
	Position *int   `json:"position,omitempty" validate:"required_if=Type put,omitempty,cell"`
}

// Decode parses and validates a raw client message.
func Decode(raw []byte) (*ClientToServerMessage, error) {
	var message ClientToServerMessage
	if err := json.Unmarshal(raw, &message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}
	if err := validator.GetValidator().Struct(message); err != nil {
		return nil, fmt.Errorf("invalid message: %w", err)
	}
	return &message, nil
}

// ToMsg converts a validated client message into a game message.
func (m *ClientToServerMessage) ToMsg() (game.Msg, error) {
	switch m.Type {
	case TypePut:
		if m.Position == nil {
			return nil, fmt.Errorf("put without position: %w", ErrUnknownMessage)
		}
		return game.Put{Position: *m.Position}, nil
	case TypeReset:
		return game.Reset{}, nil
	}
	return nil, fmt.Errorf("%q: %w", m.Type, ErrUnknownMessage)
}

// ServerToClientMessage represents a message from the server to the browser.
type ServerToClientMessage struct {
	Type      string         `json:"type" validate:"required"`
	SessionID string         `json:"session_id,omitempty"`
	Reason    string         `json:"reason,omitempty"`
	HTML      string         `json:"html,omitempty"`
	Board     *game.Board    `json:"board,omitempty"`
	Turn      game.CellState `json:"turn,omitempty"`
	Winner    game.CellState `json:"winner,omitempty"`
	Status    string         `json:"status,omitempty"`
}

// Snapshot is a read-only copy of a mounted game.
type Snapshot struct {
	SessionID string         `json:"session_id"`
	Board     game.Board     `json:"board"`
	Turn      game.CellState `json:"turn"`
	Winner    game.CellState `json:"winner"`
	Status    string         `json:"status"`
}

// NewSnapshot copies m.
func NewSnapshot(sessionID string, m game.Model) Snapshot {
	return Snapshot{
		SessionID: sessionID,
		Board:     m.Board,
		Turn:      m.Turn,
		Winner:    m.Winner,
		Status:    m.Status(),
	}
}
