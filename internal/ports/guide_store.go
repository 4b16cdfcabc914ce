package ports

import (
	"context"
	"errors"

	"github.com/emiliopalmerini/typouniverse/internal/domain"
)

var ErrGuideNotFound = errors.New("guide not found")

// GuideStore keeps generated guides so the lab and export endpoints can
// refer to them by ID.
type GuideStore interface {
	Save(ctx context.Context, g *domain.Guide) error
	// Get returns ErrGuideNotFound for unknown or evicted IDs.
	Get(ctx context.Context, id string) (*domain.Guide, error)
	Len() int
}
