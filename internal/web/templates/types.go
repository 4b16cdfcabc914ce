package templates

import (
	"github.com/emiliopalmerini/typouniverse/internal/domain"
	"github.com/emiliopalmerini/typouniverse/internal/knowledge"
)

type WizardView struct {
	State     domain.State
	Services  []knowledge.Option
	Platforms []knowledge.Option
	Assistant string
	Error     string
	// Group is set once the wizard reaches the keyword step.
	Group *GroupView
}

type GroupView struct {
	ID          string
	Description string
	Keywords    []string
	Colors      []ColorChip
}

// ColorChip is a selectable key color with a readable label color.
type ColorChip struct {
	Hex        string
	LabelColor string
}

type GuideView struct {
	Guide     *domain.Guide
	Assistant string
}

type LabView struct {
	Report     domain.LabReport
	Presets    []string
	GuideID    string
	StatusText string
	SimNote    string
	Error      string
}
