package session

import (
	"context"
	"ctchen222/ox-game/internal/events"
	"ctchen222/ox-game/internal/game"
	"ctchen222/ox-game/pkg/proto"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	DefaultHeartbeatInterval = 10 * time.Second
	incomingBuffer           = 16
)

var (
	tracer = otel.Tracer("session")
	meter  = otel.Meter("session")

	updateCounter, _ = meter.Int64Counter("game.updates",
		metric.WithDescription("Messages applied to a game model"))
	winCounter, _ = meter.Int64Counter("game.wins",
		metric.WithDescription("Games decided by a completed line"))
)

// Session is one mounted game: the model, the browser connection that drives
// it and the goroutines that pass messages between them.
type Session struct {
	ID        string
	conn      Connection
	publisher events.Publisher
	heartbeat time.Duration

	mu    sync.Mutex
	model *game.Model

	incoming  chan []byte
	closed    chan struct{}
	closeOnce sync.Once
}

// New mounts a fresh game for conn.
func New(id string, conn Connection, publisher events.Publisher, heartbeat time.Duration) *Session {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeatInterval
	}

	slog.Info("create", "session.id", id)

	return &Session{
		ID:        id,
		conn:      conn,
		publisher: publisher,
		heartbeat: heartbeat,
		model:     game.New(),
		incoming:  make(chan []byte, incomingBuffer),
		closed:    make(chan struct{}),
	}
}

// Start renders the initial view and then processes messages until the
// connection drops or ctx is cancelled. On return the session is handed to
// unregister.
func (s *Session) Start(ctx context.Context, unregister chan<- *Session) {
	go s.readPump(ctx)
	s.run(ctx)

	s.Close()
	select {
	case unregister <- s:
	case <-ctx.Done():
	}
}

// Close shuts the connection. It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		if err := s.conn.Close(); err != nil {
			slog.Debug("error closing connection", "session.id", s.ID, "error", err)
		}
	})
}

// Done is closed once the session has shut its connection.
func (s *Session) Done() <-chan struct{} {
	return s.closed
}

// run is the only goroutine that touches the model or writes to the connection.
func (s *Session) run(ctx context.Context) {
	pingTicker := time.NewTicker(s.heartbeat)
	defer pingTicker.Stop()

	if err := s.Render(ctx); err != nil {
		slog.WarnContext(ctx, "initial render failed", "session.id", s.ID, "error", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Session run goroutine stopping.", "session.id", s.ID)
			return

		case <-s.closed:
			return

		case raw := <-s.incoming:
			s.HandleMessage(ctx, raw)

		case <-pingTicker.C:
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				slog.WarnContext(ctx, "Failed to send ping, assuming disconnect", "session.id", s.ID, "error", err)
				return
			}
		}
	}
}

// Snapshot returns a copy of the current game state.
func (s *Session) Snapshot() proto.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return proto.NewSnapshot(s.ID, *s.model)
}

func msgAttributes(msg game.Msg) []attribute.KeyValue {
	switch msg := msg.(type) {
	case game.Put:
		return []attribute.KeyValue{
			attribute.String("message.type", proto.TypePut),
			attribute.Int("cell.position", msg.Position),
		}
	case game.Reset:
		return []attribute.KeyValue{attribute.String("message.type", proto.TypeReset)}
	}
	return nil
}
