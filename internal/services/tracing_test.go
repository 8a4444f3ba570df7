package services

import (
	"context"
	"testing"

	"clubsessions/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSessionService_Spans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	svc := NewSessionService(newFakeSessionRepo(), nil, testLogger(), testTimeout)
	_, err := svc.Create(context.Background(), validDraft())
	require.NoError(t, err)
	_, _, err = svc.Browse(context.Background(), domain.Filters{Time: "Brunch"}, domain.PaginationParams{})
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "SessionService.Create", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, "SessionService.Browse", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
