package grpc

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryMetricsInterceptor records per-method request counts and latency on
// the given meter.
func UnaryMetricsInterceptor(meter metric.Meter) grpclib.UnaryServerInterceptor {
	durationHistogram, _ := meter.Int64Histogram(
		"rpc.server.latency",
		metric.WithUnit("ms"),
		metric.WithDescription("The latency of unary RPCs."),
	)
	requestCounter, _ := meter.Int64Counter(
		"rpc.server.requests_total",
		metric.WithDescription("The total number of unary RPCs."),
	)

	return func(
		ctx context.Context,
		req interface{},
		info *grpclib.UnaryServerInfo,
		handler grpclib.UnaryHandler,
	) (interface{}, error) {
		startTime := time.Now()

		resp, err := handler(ctx, req)

		duration := time.Since(startTime).Milliseconds()
		attributes := []attribute.KeyValue{
			attribute.String("rpc.method", info.FullMethod),
			attribute.String("rpc.grpc.status_code", status.Code(err).String()),
		}

		durationHistogram.Record(ctx, duration, metric.WithAttributes(attributes...))
		requestCounter.Add(ctx, 1, metric.WithAttributes(attributes...))

		return resp, err
	}
}
