// Package results shows the scored assessment.
package results

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/growthfit/internal/scoring"
	"github.com/abhisek/growthfit/internal/screen"
	"github.com/abhisek/growthfit/internal/ui/layout"
	"github.com/abhisek/growthfit/internal/ui/report"
	"github.com/abhisek/growthfit/internal/ui/theme"
)

// horizontalPadding is the blank space kept on each side of the report.
const horizontalPadding = 2

type keyMap struct {
	Scroll  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Scroll:  key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑↓", "Scroll")),
	Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Take again")),
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
}

// ResultsScreen displays a result as a scrollable report.
type ResultsScreen struct {
	result   scoring.Result
	savedID  string
	viewport viewport.Model
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.Resizer = (*ResultsScreen)(nil)

// New creates a results screen. savedID is the history ID of the result,
// or empty when it was not saved. Nothing is shown until SetSize is called.
func New(result scoring.Result, savedID string) *ResultsScreen {
	return &ResultsScreen{
		result:   result,
		savedID:  savedID,
		viewport: viewport.New(),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Your Assessment Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(keys.Scroll, keys.Restart, keys.Quit)
}

// SetSize fits the viewport to the content area and re-renders the report
// at the new width.
func (s *ResultsScreen) SetSize(width, height int) {
	inner := max(width-2*horizontalPadding, 0)
	s.viewport.SetWidth(inner)
	s.viewport.SetHeight(max(height, 0))
	s.viewport.SetContent(s.body(inner))
}

func (s *ResultsScreen) body(width int) string {
	body := report.Render(s.result, width)
	if s.savedID != "" {
		body += "\n\n" + theme.Hint.Render("Saved to history as "+s.savedID)
	}
	return body
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(kmsg, keys.Restart):
			return s, func() tea.Msg { return screen.RestartMsg{} }
		case key.Matches(kmsg, keys.Quit):
			return s, tea.Quit
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	return lipgloss.NewStyle().Padding(0, horizontalPadding).Render(s.viewport.View())
}
