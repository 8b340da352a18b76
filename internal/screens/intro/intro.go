// Package intro shows a section header before its questions.
package intro

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

// IntroScreen presents one section: icon, title, description and what it
// covers.
type IntroScreen struct {
	section catalog.SectionInfo
	count   int
	step    int
	steps   int
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an intro for section, which holds count questions and is
// step (1-based) of steps.
func New(section catalog.SectionInfo, count, step, steps int) *IntroScreen {
	return &IntroScreen{section: section, count: count, step: step, steps: steps}
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) Title() string {
	return fmt.Sprintf("Section %d of %d", s.step, s.steps)
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start section"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "space":
			cat := s.section.Category
			return s, func() tea.Msg { return screen.BeginSectionMsg{Category: cat} }
		}
	}
	return s, nil
}

func (s *IntroScreen) View(width, height int) string {
	cardWidth := min(width-4, 70)

	var b strings.Builder
	b.WriteString(s.section.Icon + "  " + theme.Title.Render(s.section.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(cardWidth - 6).Render(s.section.Description))
	b.WriteString("\n\n")

	if len(s.section.Expect) > 0 {
		b.WriteString(theme.Heading.Render("What to expect:"))
		b.WriteString("\n")
		for _, e := range s.section.Expect {
			b.WriteString(theme.Body.Render("• " + e))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d questions. Press Enter to start %s.", s.count, s.section.Title)))

	card := theme.Card.Width(cardWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
