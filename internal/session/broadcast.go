package session

import (
	"context"
	"ctchen222/ox-game/internal/view"
	"ctchen222/ox-game/pkg/proto"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Render sends the current view to the browser.
func (s *Session) Render(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "session.Render", trace.WithAttributes(
		attribute.String("session.id", s.ID),
	))
	defer span.End()

	s.mu.Lock()
	model := *s.model
	s.mu.Unlock()

	slog.DebugContext(ctx, "view", "session.id", s.ID)

	fragment, err := view.RenderHTML(view.View(model))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error rendering html")
		return err
	}

	board := model.Board
	message := &proto.ServerToClientMessage{
		Type:      proto.TypeRender,
		SessionID: s.ID,
		HTML:      fragment,
		Board:     &board,
		Turn:      model.Turn,
		Winner:    model.Winner,
		Status:    model.Status(),
	}
	if err := s.send(message); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error writing render message")
		return err
	}
	return nil
}

func (s *Session) sendError(ctx context.Context, reason string) {
	if err := s.send(&proto.ServerToClientMessage{Type: proto.TypeError, Reason: reason}); err != nil {
		slog.ErrorContext(ctx, "error writing error message", "session.id", s.ID, "error", err)
	}
}

func (s *Session) send(message *proto.ServerToClientMessage) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal %s message: %w", message.Type, err)
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write %s message: %w", message.Type, err)
	}
	return nil
}

// readPump pumps messages from the connection into the run loop.
func (s *Session) readPump(ctx context.Context) {
	defer s.Close()

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			slog.InfoContext(ctx, "Browser connection closed", "session.id", s.ID, "error", err)
			return
		}
		select {
		case s.incoming <- msg:
		case <-s.closed:
			return
		case <-ctx.Done():
			return
		}
	}
}
