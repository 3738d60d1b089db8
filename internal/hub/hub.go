package hub

import (
	"context"
	"ctchen222/ox-game/internal/events"
	"ctchen222/ox-game/internal/hub/types"
	"ctchen222/ox-game/internal/session"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("hub")
	meter  = otel.Meter("hub")

	activeSessions, _ = meter.Int64UpDownCounter("sessions.active",
		metric.WithDescription("Games currently mounted"))
)

// Hub manages all mounted sessions.
type Hub struct {
	publisher  events.Publisher
	heartbeat  time.Duration
	register   chan *types.RegistrationRequest
	unregister chan *session.Session

	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewHub creates a new hub.
func NewHub(publisher events.Publisher, heartbeat time.Duration) *Hub {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}
	return &Hub{
		publisher:  publisher,
		heartbeat:  heartbeat,
		register:   make(chan *types.RegistrationRequest),
		unregister: make(chan *session.Session),
		sessions:   make(map[string]*session.Session),
	}
}

// Run starts the hub. It returns when ctx is cancelled, after which every
// session started by the hub stops as well.
func (h *Hub) Run(ctx context.Context) {
	slog.InfoContext(ctx, "Hub started")
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Hub stopping", "sessions.count", h.Count())
			return

		case req := <-h.register:
			h.registerSession(ctx, req)

		case s := <-h.unregister:
			h.unregisterSession(ctx, s)
		}
	}
}

// Register returns the register channel.
func (h *Hub) Register() chan<- *types.RegistrationRequest {
	return h.register
}

// Lookup returns the mounted session with the given ID.
func (h *Hub) Lookup(id string) (*session.Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.sessions[id]
	return s, ok
}

// Count returns the number of mounted sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.sessions)
}
