package session

import (
	"context"
	"ctchen222/ox-game/internal/events"
	"ctchen222/ox-game/internal/game"
	"ctchen222/ox-game/pkg/proto"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// HandleMessage decodes a raw browser message, applies it and renders the result.
// Messages that fail validation are answered with an error and never reach the model.
func (s *Session) HandleMessage(ctx context.Context, raw []byte) {
	ctx, span := tracer.Start(ctx, "session.HandleMessage", trace.WithAttributes(
		attribute.String("session.id", s.ID),
	))
	defer span.End()

	message, err := proto.Decode(raw)
	if err != nil {
		slog.WarnContext(ctx, "invalid message from browser", "session.id", s.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		s.sendError(ctx, err.Error())
		return
	}

	msg, err := message.ToMsg()
	if err != nil {
		slog.WarnContext(ctx, "unsupported message from browser", "session.id", s.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Unsupported message")
		s.sendError(ctx, err.Error())
		return
	}

	if !s.Dispatch(ctx, msg) {
		return
	}
	if err := s.Render(ctx); err != nil {
		slog.ErrorContext(ctx, "error rendering view", "session.id", s.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error rendering view")
	}
}

// Dispatch applies msg to the model and reports whether a render is needed.
func (s *Session) Dispatch(ctx context.Context, msg game.Msg) bool {
	ctx, span := tracer.Start(ctx, "session.Dispatch", trace.WithAttributes(
		attribute.String("session.id", s.ID),
	))
	defer span.End()
	attrs := msgAttributes(msg)
	span.SetAttributes(attrs...)

	slog.DebugContext(ctx, "update", "session.id", s.ID)

	s.mu.Lock()
	before := *s.model
	render := s.model.Update(msg)
	after := *s.model
	s.mu.Unlock()

	updateCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	span.SetAttributes(attribute.Bool("render", render))

	switch msg := msg.(type) {
	case game.Put:
		slog.InfoContext(ctx, "Put", "session.id", s.ID, "cell.position", msg.Position)
		if !game.ValidPosition(msg.Position) {
			slog.WarnContext(ctx, "Put outside the board rejected", "session.id", s.ID, "cell.position", msg.Position)
			span.SetStatus(codes.Error, "Position out of range")
			return render
		}
		if before.Board == after.Board {
			span.SetAttributes(attribute.Bool("move.applied", false))
			return render
		}
		span.SetAttributes(attribute.Bool("move.applied", true))
		s.publish(ctx, events.TypeMoveApplied, events.MoveAppliedPayload{
			SessionID: s.ID,
			Position:  msg.Position,
			Mark:      string(after.Board[msg.Position]),
		})
		if before.Winner == game.Empty && after.Winner != game.Empty {
			slog.InfoContext(ctx, "game won", "session.id", s.ID, "game.winner", string(after.Winner))
			winCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("game.winner", string(after.Winner))))
			s.publish(ctx, events.TypeGameWon, events.GameWonPayload{
				SessionID: s.ID,
				Winner:    string(after.Winner),
			})
		}

	case game.Reset:
		slog.InfoContext(ctx, "Reset", "session.id", s.ID)
		s.publish(ctx, events.TypeGameReset, events.GameResetPayload{SessionID: s.ID})
	}

	return render
}

// publish is fire-and-forget: a lost event never affects the game.
func (s *Session) publish(ctx context.Context, eventType string, payload any) {
	if err := s.publisher.Publish(ctx, eventType, payload); err != nil {
		slog.ErrorContext(ctx, "failed to publish event", "session.id", s.ID, "event.type", eventType, "error", err)
		trace.SpanFromContext(ctx).RecordError(err)
	}
}
