package components

import (
	"strings"
	"testing"
)

func TestMeter_Filled(t *testing.T) {
	tests := []struct {
		ratio float64
		want  int
	}{
		{1, 1},
		{0, 1},
		{4.5, 5},
		{12.63, 13},
		{21, 21},
		{40, 21},
	}
	for _, tt := range tests {
		if got := NewMeter(tt.ratio).Filled(); got != tt.want {
			t.Errorf("Filled(%v): expected %d, got %d", tt.ratio, tt.want, got)
		}
	}
}

func TestMeter_ViewShowsLevel(t *testing.T) {
	view := NewMeter(3.998).View()
	if !strings.Contains(view, "AA Large") {
		t.Errorf("expected level in view, got %q", view)
	}
	if strings.Count(view, "■") != 4 {
		t.Errorf("expected 4 filled cells, got %q", view)
	}
}
