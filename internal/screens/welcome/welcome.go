package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/growthfit/internal/catalog"
	"github.com/abhisek/growthfit/internal/screen"
	"github.com/abhisek/growthfit/internal/ui/layout"
	"github.com/abhisek/growthfit/internal/ui/theme"
)

const (
	headline = "Should I Learn Lifecycle & Growth Management?"
	blurb    = "Discover if you're ready for a career in growth management through an assessment " +
		"that evaluates your personality, skills, and career fit."
)

// WelcomeScreen introduces the assessment and lists its sections.
type WelcomeScreen struct {
	catalog *catalog.Catalog
	started bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen for the sections of c.
func New(c *catalog.Catalog) *WelcomeScreen {
	return &WelcomeScreen{catalog: c}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return w, nil
	}
	switch kmsg.String() {
	case "enter", "space":
		if w.started {
			return w, nil
		}
		w.started = true
		return w, func() tea.Msg { return screen.StartMsg{} }
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	textWidth := min(width-4, 72)

	sections := []string{
		RenderBanner(width),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(headline),
		"",
		theme.Subtitle.Width(textWidth).Align(lipgloss.Center).Render(blurb),
		"",
	}

	var list []string
	for _, sec := range w.catalog.Sections() {
		n := len(w.catalog.ByCategory(sec.Category))
		list = append(list, fmt.Sprintf("%s  %s  %s", sec.Icon,
			theme.Body.Render(sec.Title),
			theme.Subtitle.Render(fmt.Sprintf("(%d questions)", n))))
	}
	sections = append(sections,
		lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(list, "\n")),
		"",
		theme.Hint.Render("press Enter to start your assessment"),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
