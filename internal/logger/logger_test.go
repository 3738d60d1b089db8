package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandler(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(h).With("session.id", "s1")

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	log.Debug("update")
	log.Warn("invalid message")

	assert.Contains(t, debugBuf.String(), "msg=update")
	assert.Contains(t, debugBuf.String(), "msg=\"invalid message\"")
	assert.Contains(t, debugBuf.String(), "session.id=s1")
	assert.NotContains(t, warnBuf.String(), "msg=update")
	assert.Contains(t, warnBuf.String(), "session.id=s1")
}

func TestMultiHandlerWithGroup(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewMultiHandler(slog.NewTextHandler(&buf, nil))).WithGroup("cell")

	log.Info("Put", "position", 3)
	assert.Contains(t, buf.String(), "cell.position=3")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestInit(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, Init(&buf, "info"))

	slog.Debug("hidden")
	slog.Info("create", "session.id", "s1")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=create")
	assert.Contains(t, buf.String(), "source=")
}
