// Package metrics records OpenTelemetry metrics and exposes them in Prometheus format.
// Use cases report through BusinessMetrics; HTTP traffic through HTTPMetricsMiddleware.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Provider owns the meter provider and the Prometheus registry it exports into.
type Provider struct {
	meterProvider *metric.MeterProvider
	exporter      *promexporter.Exporter
	registry      *prometheus.Registry
}

// NewProvider creates a meter provider backed by a private Prometheus registry, so
// several providers (one per test, for instance) never collide. Instrument names carry
// the namespace themselves; it is accepted here to keep construction symmetric.
func NewProvider(_ string) (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	return &Provider{
		meterProvider: metric.NewMeterProvider(metric.WithReader(exporter)),
		exporter:      exporter,
		registry:      registry,
	}, nil
}

// Handler serves the registry for scraping.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// MeterProvider returns the provider instruments are created from.
func (p *Provider) MeterProvider() *metric.MeterProvider {
	return p.meterProvider
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}

// pair is the counter and latency histogram every instrumented surface records into.
type pair struct {
	counter otelmetric.Int64Counter
	seconds otelmetric.Float64Histogram
}

func newPair(meter otelmetric.Meter, counterName, counterUnit, histogramName, subject string) (pair, error) {
	counter, err := meter.Int64Counter(
		counterName,
		otelmetric.WithDescription("Total number of "+subject),
		otelmetric.WithUnit(counterUnit),
	)
	if err != nil {
		return pair{}, fmt.Errorf("failed to create %s counter: %w", counterName, err)
	}

	seconds, err := meter.Float64Histogram(
		histogramName,
		otelmetric.WithDescription("Duration of "+subject+" in seconds"),
		otelmetric.WithUnit("s"),
	)
	if err != nil {
		return pair{}, fmt.Errorf("failed to create %s histogram: %w", histogramName, err)
	}
	return pair{counter: counter, seconds: seconds}, nil
}
