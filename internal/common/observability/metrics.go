package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability records pipeline-level measurements through the otel meter
// backed by the shared Prometheus registry, so /metrics exposes them next to
// the promauto counters.
type Observability struct {
	meterProvider *metric.MeterProvider
	meter         otelmetric.Meter
	stageDuration otelmetric.Float64Histogram
	requests      otelmetric.Int64Counter
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	stageDuration, _ := meter.Float64Histogram(
		"pipeline.stage.duration",
		otelmetric.WithDescription("Duration of a submission pipeline stage"),
		otelmetric.WithUnit("ms"),
	)

	requests, _ := meter.Int64Counter(
		"pipeline.requests",
		otelmetric.WithDescription("Number of pipeline invocations by outcome"),
	)

	return &Observability{
		meterProvider: provider,
		meter:         meter,
		stageDuration: stageDuration,
		requests:      requests,
	}
}

// RecordStage records how long a named pipeline stage took.
func (o *Observability) RecordStage(ctx context.Context, stage string, duration time.Duration) {
	if o.stageDuration != nil {
		o.stageDuration.Record(ctx, float64(duration.Microseconds())/1000.0, otelmetric.WithAttributes(
			attribute.String("stage", stage),
		))
	}
}

// RecordRequest records a pipeline invocation outcome ("ok" or an error code).
func (o *Observability) RecordRequest(ctx context.Context, outcome string) {
	if o.requests != nil {
		o.requests.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("outcome", outcome),
		))
	}
}

// Shutdown flushes the meter provider.
func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = o.meterProvider.Shutdown(ctx)
	}
}
