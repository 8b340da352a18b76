// Package quiz asks the questions of one section.
package quiz

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/growthfit/internal/catalog"
	"github.com/abhisek/growthfit/internal/responses"
	"github.com/abhisek/growthfit/internal/screen"
	"github.com/abhisek/growthfit/internal/ui/components"
	"github.com/abhisek/growthfit/internal/ui/layout"
	"github.com/abhisek/growthfit/internal/ui/theme"
)

type keyMap struct {
	Navigate key.Binding
	Pick     key.Binding
	Answer   key.Binding
	Previous key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Navigate: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑↓", "Navigate")),
	Pick:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "Pick")),
	Answer:   key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Answer")),
	Previous: key.NewBinding(key.WithKeys("left", "backspace", "h"), key.WithHelp("←", "Previous")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Quit")),
}

// QuizScreen walks the questions of a section one at a time and records
// each answer in the collector.
type QuizScreen struct {
	section   catalog.SectionInfo
	questions []catalog.Question
	collector *responses.Collector

	index  int
	choice components.ChoiceList
	err    error
	done   bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz over questions, recording into col.
func New(section catalog.SectionInfo, questions []catalog.Question, col *responses.Collector) *QuizScreen {
	s := &QuizScreen{section: section, questions: questions, collector: col}
	s.load()
	return s
}

// load prepares the choice list for the current question, restoring any
// earlier answer.
func (s *QuizScreen) load() {
	if s.index >= len(s.questions) {
		return
	}
	q := s.questions[s.index]
	marked := -1
	if v, ok := s.collector.Value(q.ID); ok {
		marked = q.ChoiceForValue(v)
	}
	s.choice = components.NewChoiceList(q.Prompt, q.Choices(), marked)
	s.err = nil
}

// Index returns the zero-based position of the current question.
func (s *QuizScreen) Index() int {
	return s.index
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.section.Title
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	prev := keys.Previous
	prev.SetEnabled(s.index > 0)
	return layout.HintsFor(keys.Navigate, keys.Pick, keys.Answer, prev, keys.Quit)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.done || len(s.questions) == 0 {
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, keys.Previous) {
		if s.index > 0 {
			s.index--
			s.load()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if !s.choice.Submitted {
		return s, cmd
	}

	q := s.questions[s.index]
	if err := s.collector.Record(q.ID, q.ValueForChoice(s.choice.Chosen())); err != nil {
		s.err = err
		s.choice.Submitted = false
		return s, nil
	}

	s.index++
	if s.index < len(s.questions) {
		s.load()
		return s, nil
	}

	s.done = true
	cat := s.section.Category
	return s, func() tea.Msg { return screen.SectionDoneMsg{Category: cat} }
}

func (s *QuizScreen) View(width, height int) string {
	if len(s.questions) == 0 {
		return theme.Hint.Render("  This section has no questions.")
	}
	idx := min(s.index, len(s.questions)-1)
	q := s.questions[idx]
	contentWidth := min(width-4, 80)

	var b strings.Builder

	info := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Question %d of %d", idx+1, len(s.questions)))
	if q.Subcategory != "" {
		info += theme.Subtitle.Render("  ·  " + q.Subcategory)
	}
	b.WriteString(info)
	b.WriteString("\n")

	bar := components.ProgressBar{
		Percent:     float64(idx) / float64(len(s.questions)),
		ShowPercent: true,
		Width:       contentWidth,
	}
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(s.choice.View(contentWidth))

	if q.Type == catalog.TypeRatingScale && q.Scale != nil {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Rate from %d to %d.", q.Scale.Min, q.Scale.Max)))
	}

	if s.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.err.Error()))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
