package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/growthfit/internal/ui/theme"
)

// ChoiceList is a single-select option list. Options are chosen with the
// arrow keys and Enter, or directly with their number key.
type ChoiceList struct {
	Prompt  string
	Options []string
	Cursor  int
	// Marked is the previously recorded option, or -1.
	Marked    int
	Submitted bool
}

// NewChoiceList creates a choice list with the cursor on marked, or on the
// first option when marked is -1.
func NewChoiceList(prompt string, options []string, marked int) ChoiceList {
	cursor := 0
	if marked >= 0 && marked < len(options) {
		cursor = marked
	} else {
		marked = -1
	}
	return ChoiceList{
		Prompt:  prompt,
		Options: options,
		Cursor:  cursor,
		Marked:  marked,
	}
}

// Update handles keyboard navigation and selection.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", "space":
		c.Submitted = true
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(c.Options) && n <= 9 {
			c.Cursor = n - 1
			c.Submitted = true
		}
	}

	return c, nil
}

// Chosen returns the submitted option index, or -1.
func (c ChoiceList) Chosen() int {
	if !c.Submitted {
		return -1
	}
	return c.Cursor
}

// View renders the prompt and options.
func (c ChoiceList) View(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width).
		Render(c.Prompt))
	b.WriteString("\n\n")

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		mark := " "
		if i == c.Marked {
			mark = "✓"
		}
		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, opt, mark)

		switch {
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		case i == c.Marked:
			b.WriteString(theme.Answered.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
