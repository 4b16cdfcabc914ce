package otel

import (
	"context"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordGuide(context.Context, string, string) {}

func (e *NoOpExporter) RecordContrast(context.Context, float64, colormath.Level) {}

func (e *NoOpExporter) RecordSimulation(context.Context, string) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
