// Package otel instruments context7 with OpenTelemetry traces and metrics.
package otel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/fwojciec/context7"
)

// InstrumentationName names the tracer and meter used by context7.
const InstrumentationName = "github.com/fwojciec/context7"

// Interface compliance check.
var _ context7.Bridge = (*Bridge)(nil)

// Bridge decorates a context7.Bridge with a client span per call, a call
// counter and a latency histogram.
type Bridge struct {
	next   context7.Bridge
	tracer trace.Tracer

	calls   metric.Int64Counter
	latency metric.Float64Histogram
}

// NewBridge wraps next with instruments created from meter and tracer.
func NewBridge(next context7.Bridge, meter metric.Meter, tracer trace.Tracer) (*Bridge, error) {
	calls, err := meter.Int64Counter(
		"context7.bridge.calls",
		metric.WithDescription("Number of bridge calls"),
	)
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram(
		"context7.bridge.latency",
		metric.WithDescription("Bridge call latency in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	return &Bridge{
		next:    next,
		tracer:  tracer,
		calls:   calls,
		latency: latency,
	}, nil
}

// Call forwards to the wrapped bridge and records the outcome.
func (b *Bridge) Call(ctx context.Context, op context7.Operation, args any) (*context7.BridgeResponse, error) {
	start := time.Now()
	ctx, span := b.tracer.Start(ctx, "bridge "+string(op),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("context7.operation", string(op))),
	)
	defer span.End()
	if id := context7.RequestIDFromContext(ctx); id != "" {
		span.SetAttributes(attribute.String("context7.request_id", id))
	}

	resp, err := b.next.Call(ctx, op, args)

	attrs := []attribute.KeyValue{
		attribute.String("operation", string(op)),
		attribute.Bool("success", err == nil),
	}
	if err != nil {
		code := ErrorCode(err)
		attrs = append(attrs, attribute.String("error_code", code))
		span.RecordError(err)
		span.SetStatus(codes.Error, code)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	options := metric.WithAttributes(attrs...)
	b.calls.Add(ctx, 1, options)
	b.latency.Record(ctx, time.Since(start).Seconds(), options)
	return resp, err
}

// ErrorCode classifies err into a low-cardinality label.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context7.ErrBridgeTimeout):
		return "timeout"
	case errors.Is(err, context7.ErrOutputTooLarge):
		return "output_too_large"
	case errors.Is(err, context7.ErrInvalidResponse):
		return "invalid_response"
	case errors.Is(err, context7.ErrBridgeFailed):
		return "bridge_failed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

// NewTracerProvider returns a provider exporting spans over OTLP/HTTP. The
// exporter is configured by the standard OTEL_EXPORTER_OTLP_* environment
// variables. Callers own the provider and must Shutdown it.
func NewTracerProvider(ctx context.Context) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}
	return sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter)), nil
}
