// Package perf wraps OpenTelemetry tracing for outgoing API calls.
package perf

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/meza/curseforge-go"

type Span struct {
	span trace.Span
}

func (s *Span) End() {
	if s == nil || s.span == nil {
		return
	}
	s.span.End()
}

func (s *Span) SetAttributes(attributes ...attribute.KeyValue) {
	if s == nil || s.span == nil {
		return
	}
	s.span.SetAttributes(attributes...)
}

func (s *Span) RecordError(err error) {
	if s == nil || s.span == nil || err == nil {
		return
	}
	s.span.RecordError(err)
}

type SpanOption func(*spanConfig)

type spanConfig struct {
	attributes []attribute.KeyValue
}

func WithAttributes(attributes ...attribute.KeyValue) SpanOption {
	return func(config *spanConfig) {
		config.attributes = append(config.attributes, attributes...)
	}
}

// StartSpan starts a span on the globally registered tracer provider.
// Without a registered provider this is a no-op and costs nothing.
func StartSpan(ctx context.Context, name string, options ...SpanOption) (context.Context, *Span) {
	config := spanConfig{}
	for _, option := range options {
		option(&config)
	}

	spanCtx, span := otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(config.attributes...))
	return spanCtx, &Span{span: span}
}
