package hub

import (
	"context"
	"ctchen222/ox-game/internal/events"
	"ctchen222/ox-game/internal/hub/types"
	"ctchen222/ox-game/internal/session"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (h *Hub) registerSession(ctx context.Context, req *types.RegistrationRequest) {
	reqCtx := req.Ctx
	if reqCtx == nil {
		reqCtx = ctx
	}
	sessionID := uuid.New().String()
	reqCtx, span := tracer.Start(reqCtx, "hub.register", trace.WithAttributes(
		attribute.String("session.id", sessionID),
	))
	defer span.End()

	s := session.New(sessionID, req.Conn, h.publisher, h.heartbeat)

	h.mu.Lock()
	h.sessions[sessionID] = s
	h.mu.Unlock()
	activeSessions.Add(reqCtx, 1)

	// The session lives as long as the hub, not the HTTP request that created it.
	go s.Start(ctx, h.unregister)

	slog.InfoContext(reqCtx, "Session mounted", "session.id", sessionID)
	if err := h.publisher.Publish(reqCtx, events.TypeSessionMounted, events.SessionMountedPayload{SessionID: sessionID}); err != nil {
		slog.ErrorContext(reqCtx, "Failed to publish session_mounted event", "session.id", sessionID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to publish session_mounted event")
	}

	if req.Mounted != nil {
		req.Mounted <- sessionID
	}
}

func (h *Hub) unregisterSession(ctx context.Context, s *session.Session) {
	ctx, span := tracer.Start(ctx, "hub.unregister", trace.WithAttributes(
		attribute.String("session.id", s.ID),
	))
	defer span.End()

	h.mu.Lock()
	_, ok := h.sessions[s.ID]
	delete(h.sessions, s.ID)
	h.mu.Unlock()
	if !ok {
		return
	}
	activeSessions.Add(ctx, -1)

	slog.InfoContext(ctx, "Session unmounted", "session.id", s.ID)
	if err := h.publisher.Publish(ctx, events.TypeSessionUnmounted, events.SessionUnmountedPayload{SessionID: s.ID}); err != nil {
		slog.ErrorContext(ctx, "Failed to publish session_unmounted event", "session.id", s.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to publish session_unmounted event")
	}
}
