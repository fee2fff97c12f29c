package observability

import (
	"context"
	"errors"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Telemetry bundles the trace and meter providers with the call metrics
// recorded on them.
type Telemetry struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *Metrics
}

// Start initializes tracing and metrics export. On error nothing is left
// running.
func Start(ctx context.Context, cfg Config) (*Telemetry, error) {
	tp, err := InitTracer(ctx, cfg)
	if err != nil {
		return nil, err
	}
	t := &Telemetry{tracer: tp}

	t.meter, err = InitMeter(ctx, cfg)
	if err != nil {
		return nil, errors.Join(err, t.Shutdown(ctx))
	}
	t.metrics, err = NewMetrics(Meter(cfg.ServiceName))
	if err != nil {
		return nil, errors.Join(err, t.Shutdown(ctx))
	}
	return t, nil
}

// Metrics returns the call instruments.
func (t *Telemetry) Metrics() *Metrics { return t.metrics }

// Shutdown flushes and stops both providers.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.meter != nil {
		errs = append(errs, t.meter.Shutdown(ctx))
	}
	if t.tracer != nil {
		errs = append(errs, t.tracer.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
