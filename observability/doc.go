// Package observability provides OpenTelemetry tracing and metrics for API
// calls.
//
//	tel, err := observability.Start(ctx, observability.DefaultConfig("untappd"))
//	if err != nil {
//		return err
//	}
//	defer tel.Shutdown(ctx)
//	svc := api.NewService(api.WithMetrics(tel.Metrics()))
//
// Each call is tracked by a CallContext:
//
//	cc := observability.NewCallContext("/v3/beer_search", "GET", requestID, metrics)
//	ctx, span := cc.StartSpan(ctx, observability.SpanFire)
//	defer cc.End(ctx, span, "transport", err)
package observability
