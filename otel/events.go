package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/fwojciec/context7"
)

// EventMetrics translates lookup events into metrics: lookup outcomes and
// the size of returned documentation.
type EventMetrics struct {
	lookups  metric.Int64Counter
	docChars metric.Int64Histogram
}

// NewEventMetrics creates instruments from meter.
func NewEventMetrics(meter metric.Meter) (*EventMetrics, error) {
	lookups, err := meter.Int64Counter(
		"context7.lookups",
		metric.WithDescription("Number of finished lookups by outcome"),
	)
	if err != nil {
		return nil, err
	}
	docChars, err := meter.Int64Histogram(
		"context7.docs.chars",
		metric.WithDescription("Length of documentation text before clipping"),
		metric.WithUnit("{char}"),
	)
	if err != nil {
		return nil, err
	}
	return &EventMetrics{lookups: lookups, docChars: docChars}, nil
}

// Handle records e. It has the signature expected by
// context7.WithEventHandler.
func (m *EventMetrics) Handle(e context7.Event) {
	ctx := context.Background()
	switch e := e.(type) {
	case context7.EventRejected:
		m.lookups.Add(ctx, 1, metric.WithAttributes(
			attribute.String("outcome", "rejected"),
			attribute.String("reason", e.Reason),
		))
	case context7.EventUnresolved:
		m.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "unresolved")))
	case context7.EventQueryFinished:
		m.lookups.Add(ctx, 1, metric.WithAttributes(
			attribute.String("outcome", "answered"),
			attribute.Bool("clipped", e.Clipped),
		))
		m.docChars.Record(ctx, int64(e.Chars))
	}
}
