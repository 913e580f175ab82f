package trace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestTracer_StartClient(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)

	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	tr := New("pku-iaaa/test")

	_, sp := tr.StartClient(context.Background(), "iaaa.proxy", attribute.String("url", "http://elective.pku.edu.cn"))
	RecordError(sp, errors.New("boom"))
	RecordError(sp, nil)
	sp.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	assert.Equal(t, "iaaa.proxy", spans[0].Name())
	assert.Equal(t, oteltrace.SpanKindClient, spans[0].SpanKind())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("url", "http://elective.pku.edu.cn"))
}
