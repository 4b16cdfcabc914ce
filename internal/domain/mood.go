package domain

// Mood is the position of the two wizard sliders, each in [0, 100].
// Soft runs soft (0) to hard (100); Static runs static (0) to dynamic (100).
type Mood struct {
	Soft   int
	Static int
}

// Mood groups, keyed the same way as the knowledge base.
const (
	GroupSoftDynamic = "group1"
	GroupSoftStatic  = "group2"
	GroupHardStatic  = "group3"
	GroupHardDynamic = "group4"
	GroupBalanced    = "group5"
)

// moodDeadZone is how far a slider must move from center before the
// keyword step opens.
const moodDeadZone = 10

// NeutralMood is the slider position the wizard starts at.
func NeutralMood() Mood {
	return Mood{Soft: 50, Static: 50}
}

// Clamp limits both sliders to [0, 100].
func (m Mood) Clamp() Mood {
	return Mood{Soft: clampPercent(m.Soft), Static: clampPercent(m.Static)}
}

// Expressive reports whether either slider left the neutral dead zone.
func (m Mood) Expressive() bool {
	return abs(m.Soft-50) > moodDeadZone || abs(m.Static-50) > moodDeadZone
}

// Group maps the mood to its quadrant. Anything near the center of either
// axis falls into the balanced group.
func (m Mood) Group() string {
	switch {
	case m.Soft < 40 && m.Static >= 60:
		return GroupSoftDynamic
	case m.Soft < 40 && m.Static < 40:
		return GroupSoftStatic
	case m.Soft >= 60 && m.Static < 40:
		return GroupHardStatic
	case m.Soft >= 60 && m.Static >= 60:
		return GroupHardDynamic
	default:
		return GroupBalanced
	}
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
