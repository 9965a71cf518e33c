package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aalvaropc/aoc/internal/domain"
)

// Span names, one per solve stage.
const (
	SpanSolve     = "aoc.solve"
	SpanResolve   = "aoc.resolve"
	SpanLoadInput = "aoc.load_input"
	SpanConstruct = "aoc.construct"
	SpanPartOne   = "aoc.part_one"
	SpanPartTwo   = "aoc.part_two"
)

// Attribute keys.
const (
	AttrYear      = "aoc.year"
	AttrDay       = "aoc.day"
	AttrPart      = "aoc.part"
	AttrErrorKind = "error.kind"
)

// PartSpan returns the span name for p.
func PartSpan(p domain.Part) string {
	if p == domain.PartTwo {
		return SpanPartTwo
	}
	return SpanPartOne
}

// KeyAttrs returns the attributes identifying a puzzle day.
func KeyAttrs(k domain.Key) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int(AttrYear, k.Year),
		attribute.Int(AttrDay, k.Day),
	}
}

// Start opens an internal span tagged with k.
func Start(ctx context.Context, t trace.Tracer, name string, k domain.Key) (context.Context, trace.Span) {
	return t.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(KeyAttrs(k)...),
	)
}

// End records err on span (if any) and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		if kind := domain.KindOf(err); kind != "" {
			span.SetAttributes(attribute.String(AttrErrorKind, string(kind)))
		}
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
