package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics records use case activity.
type BusinessMetrics interface {
	// RecordOperation counts one call. domain is "identifier"; operation names the kind
	// and the call, for example "bank-account_generate" or "iban_validate"; status is
	// "success" or "error".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records how long one call took.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordGenerated adds count to the number of values produced for kind.
	RecordGenerated(ctx context.Context, kind string, count int)
}

type businessMetrics struct {
	operations pair
	generated  metric.Int64Counter
}

// NewBusinessMetrics creates the business instruments under namespace, for example
// "idsmith_operations_total" and "idsmith_identifiers_generated_total".
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operations, err := newPair(
		meter,
		namespace+"_operations_total",
		"{operation}",
		namespace+"_operation_duration_seconds",
		"business operations",
	)
	if err != nil {
		return nil, err
	}

	generated, err := meter.Int64Counter(
		namespace+"_identifiers_generated_total",
		metric.WithDescription("Total number of generated identifiers"),
		metric.WithUnit("{identifier}"),
	)
	if err != nil {
		return nil, err
	}

	return &businessMetrics{operations: operations, generated: generated}, nil
}

func operationAttributes(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.counter.Add(ctx, 1, operationAttributes(domain, operation, status))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.operations.seconds.Record(ctx, duration.Seconds(), operationAttributes(domain, operation, status))
}

func (b *businessMetrics) RecordGenerated(ctx context.Context, kind string, count int) {
	if count <= 0 {
		return
	}
	b.generated.Add(ctx, int64(count), metric.WithAttributes(attribute.String("kind", kind)))
}

// NoOpBusinessMetrics discards everything. It is used when METRICS_ENABLED is false.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics returns a BusinessMetrics that records nothing.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(context.Context, string, string, string) {}

func (n *NoOpBusinessMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {}

func (n *NoOpBusinessMetrics) RecordGenerated(context.Context, string, int) {}
