package domain

import (
	"errors"
	"fmt"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
)

var (
	ErrStepNotReached      = errors.New("wizard step not reached")
	ErrIncompleteSelection = errors.New("primary color and platform are required")
	ErrInvalidSelection    = errors.New("invalid selection")
)

// Step is how far the wizard has progressed.
type Step int

const (
	StepBasics Step = iota + 1
	StepMood
	StepKeyword
	StepColor
	StepReady
)

func (s Step) String() string {
	switch s {
	case StepBasics:
		return "basics"
	case StepMood:
		return "mood"
	case StepKeyword:
		return "keyword"
	case StepColor:
		return "color"
	case StepReady:
		return "ready"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// State is an immutable snapshot of the wizard. Reduce returns new values
// and never modifies its input.
type State struct {
	Service      string
	Platform     string
	Mood         Mood
	Keyword      string
	PrimaryColor string
	Step         Step
	Guide        *Guide
}

// NewState returns the state the wizard opens with.
func NewState() State {
	return State{Mood: NeutralMood(), Step: StepBasics}
}

// MoodGroup is the knowledge-base group the current mood selects.
func (s State) MoodGroup() string {
	return s.Mood.Group()
}

// Event is one user action in the wizard.
type Event interface {
	apply(State) (State, error)
}

type (
	SelectService  struct{ Value string }
	SelectPlatform struct{ Value string }
	SetMood        struct{ Mood Mood }
	SelectKeyword  struct{ Value string }
	SelectColor    struct{ Hex string }
	AttachGuide    struct{ Guide *Guide }
	Reset          struct{}
)

// Reduce applies e to s. On error s is returned unchanged.
func Reduce(s State, e Event) (State, error) {
	next, err := e.apply(s)
	if err != nil {
		return s, err
	}
	return next, nil
}

func (e SelectService) apply(s State) (State, error) {
	s.Service = e.Value
	s.Guide = nil
	return s.advanceBasics(), nil
}

func (e SelectPlatform) apply(s State) (State, error) {
	s.Platform = e.Value
	s.Guide = nil
	return s.advanceBasics(), nil
}

func (s State) advanceBasics() State {
	if s.Step == StepBasics && s.Service != "" && s.Platform != "" {
		s.Step = StepMood
	}
	return s
}

func (e SetMood) apply(s State) (State, error) {
	if s.Step < StepMood {
		return s, fmt.Errorf("%w: mood needs service and platform", ErrStepNotReached)
	}
	m := e.Mood.Clamp()
	if m == s.Mood {
		return s, nil
	}
	groupChanged := m.Group() != s.Mood.Group()
	s.Mood = m
	s.Guide = nil

	switch {
	case s.Step == StepMood && m.Expressive():
		s.Step = StepKeyword
	case s.Step > StepKeyword && groupChanged:
		// The keyword and color came from the previous group.
		s.Keyword = ""
		s.PrimaryColor = ""
		s.Step = StepKeyword
	}
	return s, nil
}

func (e SelectKeyword) apply(s State) (State, error) {
	if s.Step < StepKeyword {
		return s, fmt.Errorf("%w: keyword needs a mood", ErrStepNotReached)
	}
	if e.Value == "" {
		return s, fmt.Errorf("%w: empty keyword", ErrInvalidSelection)
	}
	s.Keyword = e.Value
	s.PrimaryColor = ""
	s.Guide = nil
	s.Step = StepColor
	return s, nil
}

func (e SelectColor) apply(s State) (State, error) {
	if s.Step < StepColor {
		return s, fmt.Errorf("%w: color needs a keyword", ErrStepNotReached)
	}
	hex, err := colormath.NormalizeHex(e.Hex)
	if err != nil {
		return s, err
	}
	s.PrimaryColor = hex
	s.Guide = nil
	s.Step = StepReady
	return s, nil
}

func (e AttachGuide) apply(s State) (State, error) {
	if s.Step < StepReady {
		return s, fmt.Errorf("%w: guide needs a primary color", ErrStepNotReached)
	}
	s.Guide = e.Guide
	return s, nil
}

func (Reset) apply(State) (State, error) {
	return NewState(), nil
}

// Restore rebuilds a state from submitted form values by replaying the
// wizard events in order. Events the state cannot accept yet are skipped,
// so a partial form yields the furthest consistent state.
func Restore(service, platform string, mood Mood, keyword, color string) State {
	s := NewState()
	events := []Event{
		SelectService{Value: service},
		SelectPlatform{Value: platform},
		SetMood{Mood: mood},
	}
	if keyword != "" {
		events = append(events, SelectKeyword{Value: keyword})
	}
	if color != "" {
		events = append(events, SelectColor{Hex: color})
	}
	for _, e := range events {
		s, _ = Reduce(s, e)
	}
	return s
}
