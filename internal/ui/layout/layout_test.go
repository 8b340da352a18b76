package layout

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Technical Readiness Evaluation", "7/16 answered", 100)
	for _, want := range []string{"GrowthFit", "Technical Readiness Evaluation", "7/16 answered"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Answer"}, {Key: "q", Description: "Quit"}}, 80)
	if !strings.Contains(f, "Enter") || !strings.Contains(f, "Quit") {
		t.Errorf("footer missing hints: %q", f)
	}
}

func TestRenderFrameHeight(t *testing.T) {
	header := RenderHeader("", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
}

func TestHintsFor(t *testing.T) {
	back := key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "Previous"))
	back.SetEnabled(false)
	hints := HintsFor(
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Take again")),
		back,
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
	)
	want := []KeyHint{
		{Key: "r", Description: "Take again"},
		{Key: "q", Description: "Quit"},
	}
	if len(hints) != len(want) {
		t.Fatalf("hints = %v, want %v", hints, want)
	}
	for i := range want {
		if hints[i] != want[i] {
			t.Errorf("hints[%d] = %v, want %v", i, hints[i], want[i])
		}
	}
}
