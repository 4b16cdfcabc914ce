package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
	"github.com/emiliopalmerini/typouniverse/internal/ports"
)

const (
	serviceName    = "typouniverse"
	serviceVersion = "1.0.0"
)

// Exporter exports usage metrics to an OTEL Collector.
type Exporter struct {
	provider         *sdkmetric.MeterProvider
	guidesTotal      metric.Int64Counter
	contrastTotal    metric.Int64Counter
	contrastHist     metric.Float64Histogram
	simulationsTotal metric.Int64Counter
}

// New returns an OTLP exporter when enabled, and a no-op exporter when
// disabled or when the collector connection cannot be set up.
func New(ctx context.Context, cfg Config, log *zap.Logger) ports.MetricsExporter {
	if !cfg.Enabled {
		return NewNoOpExporter()
	}
	exp, err := NewExporter(ctx, cfg)
	if err != nil {
		log.Warn("metrics disabled", zap.Error(err))
		return NewNoOpExporter()
	}
	log.Info("exporting metrics", zap.String("endpoint", cfg.Endpoint))
	return exp
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	guidesTotal, err := meter.Int64Counter(
		"typouniverse_guides_total",
		metric.WithDescription("Total number of generated design guides"),
		metric.WithUnit("{guide}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating guides counter: %w", err)
	}

	contrastTotal, err := meter.Int64Counter(
		"typouniverse_contrast_checks_total",
		metric.WithDescription("Total number of contrast checks"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating contrast counter: %w", err)
	}

	contrastHist, err := meter.Float64Histogram(
		"typouniverse_contrast_ratio",
		metric.WithDescription("Contrast ratios of checked color pairs"),
		metric.WithExplicitBucketBoundaries(1, 2, 3, 4.5, 7, 10, 15, 21),
	)
	if err != nil {
		return nil, fmt.Errorf("creating contrast histogram: %w", err)
	}

	simulationsTotal, err := meter.Int64Counter(
		"typouniverse_simulations_total",
		metric.WithDescription("Total number of color-blindness simulations"),
		metric.WithUnit("{simulation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating simulations counter: %w", err)
	}

	return &Exporter{
		provider:         provider,
		guidesTotal:      guidesTotal,
		contrastTotal:    contrastTotal,
		contrastHist:     contrastHist,
		simulationsTotal: simulationsTotal,
	}, nil
}

func (e *Exporter) RecordGuide(ctx context.Context, platform, moodGroup string) {
	e.guidesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("platform", platform),
		attribute.String("mood_group", moodGroup),
	))
}

func (e *Exporter) RecordContrast(ctx context.Context, ratio float64, level colormath.Level) {
	opt := metric.WithAttributes(attribute.String("level", string(level)))
	e.contrastTotal.Add(ctx, 1, opt)
	e.contrastHist.Record(ctx, ratio, opt)
}

func (e *Exporter) RecordSimulation(ctx context.Context, preset string) {
	e.simulationsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("preset", preset)))
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
