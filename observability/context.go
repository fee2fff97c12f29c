package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Call status values recorded on spans and metrics.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// CallContext tracks one API call from dispatch to result.
type CallContext struct {
	Endpoint  string
	Method    string
	RequestID string
	StartTime time.Time
	Metrics   *Metrics
}

// NewCallContext creates a new call context.
// If metrics is nil, metric recording is silently skipped.
func NewCallContext(endpoint, method, requestID string, metrics *Metrics) *CallContext {
	return &CallContext{
		Endpoint:  endpoint,
		Method:    method,
		RequestID: requestID,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

type callContextKey struct{}

// WithCallContext stores a CallContext in the context.
func WithCallContext(ctx context.Context, cc *CallContext) context.Context {
	return context.WithValue(ctx, callContextKey{}, cc)
}

// CallContextFromContext retrieves the CallContext from context, or nil.
func CallContextFromContext(ctx context.Context) *CallContext {
	if cc, ok := ctx.Value(callContextKey{}).(*CallContext); ok {
		return cc
	}
	return nil
}

// StartSpan starts a traced span for the call and records the call start metric.
func (cc *CallContext) StartSpan(ctx context.Context, spanName string) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String(AttrEndpoint, cc.Endpoint),
		attribute.String(AttrMethod, cc.Method),
	)
	if cc.RequestID != "" {
		span.SetAttributes(attribute.String(AttrRequestID, cc.RequestID))
	}

	if cc.Metrics != nil {
		cc.Metrics.RecordCallStart(ctx)
	}
	return WithCallContext(ctx, cc), span
}

// End ends the span and records call-end metrics. A non-nil err marks the
// span as failed and is counted under kind.
func (cc *CallContext) End(ctx context.Context, span trace.Span, kind string, err error) {
	duration := time.Since(cc.StartTime)

	status := StatusOK
	if err != nil {
		status = StatusError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}

	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if cc.Metrics != nil {
		cc.Metrics.RecordCallEnd(ctx, cc.Endpoint, cc.Method, status, duration)
		if err != nil {
			cc.Metrics.RecordError(ctx, kind, cc.Endpoint)
		}
	}
}

// Duration returns the elapsed time since the call started.
func (cc *CallContext) Duration() time.Duration {
	return time.Since(cc.StartTime)
}
