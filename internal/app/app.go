package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/growthfit/internal/catalog"
	"github.com/abhisek/growthfit/internal/history"
	"github.com/abhisek/growthfit/internal/responses"
	"github.com/abhisek/growthfit/internal/scoring"
	"github.com/abhisek/growthfit/internal/screen"
	"github.com/abhisek/growthfit/internal/screens/intro"
	"github.com/abhisek/growthfit/internal/screens/quiz"
	"github.com/abhisek/growthfit/internal/screens/results"
	"github.com/abhisek/growthfit/internal/screens/welcome"
	"github.com/abhisek/growthfit/internal/ui/layout"
)

// Options holds the dependencies of the interactive assessment.
type Options struct {
	Context  context.Context
	Catalog  *catalog.Catalog
	Recorder *history.Recorder
}

// scoredMsg carries a finished result back into the update loop.
type scoredMsg struct {
	result  scoring.Result
	savedID string
}

// AppModel is the root Bubble Tea model. It walks the sections in catalog
// order and owns the response collector for the run.
type AppModel struct {
	ctx       context.Context
	catalog   *catalog.Catalog
	recorder  *history.Recorder
	collector *responses.Collector
	sections  []catalog.SectionInfo

	active screen.Screen
	width  int
	height int
}

// newAppModel creates an AppModel on the welcome screen.
func newAppModel(opts Options) AppModel {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return AppModel{
		ctx:       ctx,
		catalog:   opts.Catalog,
		recorder:  opts.Recorder,
		collector: responses.NewCollector(opts.Catalog),
		sections:  opts.Catalog.Sections(),
		active:    welcome.New(opts.Catalog),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeActive()
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screen.StartMsg:
		return m.showIntro(0)

	case screen.BeginSectionMsg:
		sec, _ := m.catalog.Section(msg.Category)
		return m.show(quiz.New(sec, m.catalog.ByCategory(msg.Category), m.collector))

	case screen.SectionDoneMsg:
		if next := m.sectionIndex(msg.Category) + 1; next < len(m.sections) {
			return m.showIntro(next)
		}
		return m, m.score()

	case scoredMsg:
		return m.show(results.New(msg.result, msg.savedID))

	case screen.RestartMsg:
		m.collector.Reset()
		return m.showIntro(0)
	}

	updated, cmd := m.active.Update(msg)
	m.active = updated
	return m, cmd
}

func (m AppModel) show(s screen.Screen) (tea.Model, tea.Cmd) {
	m.active = s
	m.resizeActive()
	return m, s.Init()
}

// resizeActive passes the content area size to screens that track it.
func (m AppModel) resizeActive() {
	if r, ok := m.active.(screen.Resizer); ok {
		_, _, w, h := m.chrome()
		r.SetSize(w, h)
	}
}

// chrome renders the header and footer for the active screen and returns
// them with the size left for content.
func (m AppModel) chrome() (header, footer string, width, height int) {
	p := m.collector.Progress()
	header = layout.RenderHeader(m.active.Title(), fmt.Sprintf("%d/%d answered", p.Answered, p.Total), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := m.active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer = layout.RenderFooter(footerHints, m.width)

	height = max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return header, footer, m.width, height
}

func (m AppModel) showIntro(i int) (tea.Model, tea.Cmd) {
	if len(m.sections) == 0 {
		return m, m.score()
	}
	sec := m.sections[i]
	return m.show(intro.New(sec, len(m.catalog.ByCategory(sec.Category)), i+1, len(m.sections)))
}

func (m AppModel) sectionIndex(cat catalog.Category) int {
	for i, s := range m.sections {
		if s.Category == cat {
			return i
		}
	}
	return len(m.sections)
}

// score runs outside the update loop because saving touches the database.
func (m AppModel) score() tea.Cmd {
	answers := m.collector.Set()
	ctx, rec := m.ctx, m.recorder
	return func() tea.Msg {
		result, saved := rec.Score(ctx, answers)
		msg := scoredMsg{result: result}
		if saved != nil {
			msg.savedID = saved.ID
		}
		return msg
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the full frame, or nothing until the window size is known.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header, footer, width, height := m.chrome()
	content := m.active.View(width, height)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
