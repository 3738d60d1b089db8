package types

import (
	"context"
	"ctchen222/ox-game/internal/session"
)

// RegistrationRequest asks the hub to mount a new game on Conn.
type RegistrationRequest struct {
	Conn session.Connection
	Ctx  context.Context
	// Mounted, when set, receives the new session's ID once it is registered.
	Mounted chan<- string
}
