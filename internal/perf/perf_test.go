package perf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestStartSpanRecordsAttributes(t *testing.T) {
	exporter, restore := InstallExporter()
	defer restore()

	_, span := StartSpan(context.Background(), "api.test.call",
		WithAttributes(attribute.String("url", "https://example.com")),
	)
	span.SetAttributes(attribute.Int("status", 200))
	span.End()

	spans := exporter.Snapshot()
	require.Len(t, spans, 1)
	assert.Equal(t, "api.test.call", spans[0].Name())

	attributes := make(map[attribute.Key]attribute.Value)
	for _, kv := range spans[0].Attributes() {
		attributes[kv.Key] = kv.Value
	}
	assert.Equal(t, "https://example.com", attributes["url"].AsString())
	assert.Equal(t, int64(200), attributes["status"].AsInt64())
}

func TestStartSpanWithoutProviderIsNoop(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "api.noop")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	span.RecordError(assert.AnError)
	span.End()
}

func TestNilSpanIsSafe(t *testing.T) {
	var span *Span
	span.SetAttributes(attribute.Bool("ignored", true))
	span.RecordError(assert.AnError)
	span.End()
}

func TestExporterReset(t *testing.T) {
	exporter, restore := InstallExporter()
	defer restore()

	_, span := StartSpan(context.Background(), "api.reset")
	span.End()
	require.Len(t, exporter.SpanNames(), 1)

	exporter.Reset()
	assert.Empty(t, exporter.Snapshot())
}
