package perf

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type SpanExporter struct {
	mu    sync.Mutex
	spans []sdktrace.ReadOnlySpan
}

func NewSpanExporter() *SpanExporter {
	return &SpanExporter{
		spans: make([]sdktrace.ReadOnlySpan, 0),
	}
}

func (exporter *SpanExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	exporter.mu.Lock()
	defer exporter.mu.Unlock()
	exporter.spans = append(exporter.spans, spans...)
	return nil
}

func (exporter *SpanExporter) Shutdown(context.Context) error {
	return nil
}

func (exporter *SpanExporter) Reset() {
	exporter.mu.Lock()
	defer exporter.mu.Unlock()
	exporter.spans = exporter.spans[:0]
}

func (exporter *SpanExporter) Snapshot() []sdktrace.ReadOnlySpan {
	exporter.mu.Lock()
	defer exporter.mu.Unlock()

	out := make([]sdktrace.ReadOnlySpan, len(exporter.spans))
	copy(out, exporter.spans)
	return out
}

func (exporter *SpanExporter) SpanNames() []string {
	names := make([]string, 0)
	for _, span := range exporter.Snapshot() {
		names = append(names, span.Name())
	}
	return names
}

// InstallExporter registers a tracer provider that feeds every finished span
// into the returned exporter. The returned func restores the previous
// provider and must be deferred by the caller.
func InstallExporter() (*SpanExporter, func()) {
	exporter := NewSpanExporter()
	previous := otel.GetTracerProvider()
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)
	otel.SetTracerProvider(provider)

	return exporter, func() {
		_ = provider.Shutdown(context.Background())
		otel.SetTracerProvider(previous)
	}
}
