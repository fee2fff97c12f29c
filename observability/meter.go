package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/untappd/logger"
)

// InitMeter installs a periodic OTLP metric exporter as the global meter
// provider. The caller shuts the provider down on exit.
func InitMeter(ctx context.Context, cfg Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded for every API call.
type Metrics struct {
	callTotal    metric.Int64Counter
	callDuration metric.Float64Histogram
	callActive   metric.Int64UpDownCounter
	errorTotal   metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	callTotal, err := meter.Int64Counter("api.calls",
		metric.WithDescription("Total number of API calls"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating api.calls counter: %w", err)
	}

	callDuration, err := meter.Float64Histogram("api.call.duration",
		metric.WithDescription("Duration of API calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating api.call.duration histogram: %w", err)
	}

	callActive, err := meter.Int64UpDownCounter("api.calls.active",
		metric.WithDescription("Number of API calls in flight"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating api.calls.active gauge: %w", err)
	}

	errorTotal, err := meter.Int64Counter("api.errors",
		metric.WithDescription("Total API call failures by kind and endpoint"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating api.errors counter: %w", err)
	}

	return &Metrics{
		callTotal:    callTotal,
		callDuration: callDuration,
		callActive:   callActive,
		errorTotal:   errorTotal,
	}, nil
}

// RecordCallStart increments the in-flight call count.
func (m *Metrics) RecordCallStart(ctx context.Context) {
	m.callActive.Add(ctx, 1)
}

// RecordCallEnd decrements in-flight calls and records the completed call.
func (m *Metrics) RecordCallEnd(ctx context.Context, endpoint, method, status string, duration time.Duration) {
	m.callActive.Add(ctx, -1)
	m.callTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("method", method),
		attribute.String("status", status),
	))
	m.callDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("method", method),
	))
}

// RecordError records a failed call by error kind and endpoint.
func (m *Metrics) RecordError(ctx context.Context, kind, endpoint string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("endpoint", endpoint),
	))
}
