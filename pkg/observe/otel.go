package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cellkit-dev/cellkit/pkg/cell"
)

// Default tracer name for cellkit instrumentation.
const defaultTracerName = "cellkit"

// OTelConfig configures the OpenTelemetry hook.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "cellkit").
	TracerName string

	// IncludeValues records previous and next values as span attributes.
	// Values may contain sensitive information - disabled by default.
	IncludeValues bool

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry hook.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludeValues enables recording cell values on spans.
func WithIncludeValues(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeValues = include
	}
}

// OTel returns a hook that records a span per cell operation. Spans are
// named "cell.set", "cell.recompute", "cell.hydrate", or "cell.persist"
// and carry the cell name and changed flag; persistence failures set
// error status.
func OTel(opts ...OTelOption) cell.Hook {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return func(ev cell.Event) {
		attrs := []attribute.KeyValue{
			attribute.String("cell.name", ev.Cell),
			attribute.String("cell.op", ev.Op.String()),
			attribute.Bool("cell.changed", ev.Changed),
		}
		if config.IncludeValues {
			attrs = append(attrs,
				attribute.String("cell.prev", fmt.Sprintf("%v", ev.Prev)),
				attribute.String("cell.next", fmt.Sprintf("%v", ev.Next)),
			)
		}

		_, span := config.tracer.Start(context.Background(), "cell."+ev.Op.String(),
			trace.WithAttributes(attrs...))
		if ev.Err != nil {
			span.RecordError(ev.Err)
			span.SetStatus(codes.Error, ev.Err.Error())
		}
		span.End()
	}
}
