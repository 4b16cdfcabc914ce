package ports

import (
	"context"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
)

// MetricsExporter exports usage metrics to an external observability system.
type MetricsExporter interface {
	// RecordGuide counts a generated guide.
	RecordGuide(ctx context.Context, platform, moodGroup string)
	// RecordContrast counts a contrast check and records its ratio.
	RecordContrast(ctx context.Context, ratio float64, level colormath.Level)
	// RecordSimulation counts a color-blindness simulation.
	RecordSimulation(ctx context.Context, preset string)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}
