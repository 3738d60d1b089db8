package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("events")

// Pub/Sub channel constants
const (
	EventsChannel = "channel:events"
)

// Event types
const (
	TypeSessionMounted   = "session_mounted"
	TypeSessionUnmounted = "session_unmounted"
	TypeMoveApplied      = "move_applied"
	TypeGameWon          = "game_won"
	TypeGameReset        = "game_reset"
)

// Event represents a global message published via Pub/Sub.
type Event struct {
	Type    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// SessionMountedPayload is the payload for the "session_mounted" event.
type SessionMountedPayload struct {
	SessionID string `json:"session_id"`
}

// SessionUnmountedPayload is the payload for the "session_unmounted" event.
type SessionUnmountedPayload struct {
	SessionID string `json:"session_id"`
}

// MoveAppliedPayload is the payload for the "move_applied" event.
type MoveAppliedPayload struct {
	SessionID string `json:"session_id"`
	Position  int    `json:"position"`
	Mark      string `json:"mark"`
}

// GameWonPayload is the payload for the "game_won" event.
type GameWonPayload struct {
	SessionID string `json:"session_id"`
	Winner    string `json:"winner"`
}

// GameResetPayload is the payload for the "game_reset" event.
type GameResetPayload struct {
	SessionID string `json:"session_id"`
}

//go:generate mockgen -source=events.go -destination=../mocks/mock_publisher.go -package=mocks

// Publisher announces activity to whoever listens on the events channel.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// Encode wraps payload in an Event envelope.
func Encode(eventType string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	event, err := json.Marshal(Event{Type: eventType, Payload: data})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return event, nil
}

type redisPublisher struct {
	rdb *redis.Client
}

// NewRedisPublisher publishes events on EventsChannel.
func NewRedisPublisher(rdb *redis.Client) Publisher {
	return &redisPublisher{rdb: rdb}
}

func (p *redisPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	ctx, span := tracer.Start(ctx, "events.Publish")
	defer span.End()

	event, err := Encode(eventType, payload)
	if err != nil {
		return err
	}
	if err := p.rdb.Publish(ctx, EventsChannel, event).Err(); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

type nopPublisher struct{}

// NewNopPublisher returns a Publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, string, any) error {
	return nil
}
