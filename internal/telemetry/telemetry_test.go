package telemetry

import (
	"context"
	"ctchen222/ox-game/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestInitOtelDisabled(t *testing.T) {
	shutdown, err := InitOtel(context.Background(), config.Otel{ServiceName: "ox-test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewResource(t *testing.T) {
	res, err := newResource("ox-test")
	require.NoError(t, err)

	value, ok := res.Set().Value(attribute.Key("service.name"))
	require.True(t, ok)
	assert.Equal(t, "ox-test", value.AsString())
}
