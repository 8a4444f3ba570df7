package tracing

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracerProvider_Disabled(t *testing.T) {
	shutdown, err := InitTracerProvider(context.Background(), "clubsessions", "", slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
