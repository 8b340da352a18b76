package screen

import "github.com/abhisek/growthfit/internal/catalog"

// Flow messages. Screens emit them; the app model decides what comes next.
type (
	// StartMsg leaves the welcome screen.
	StartMsg struct{}

	// BeginSectionMsg starts the questions of a section.
	BeginSectionMsg struct {
		Category catalog.Category
	}

	// SectionDoneMsg reports that the last question of a section was answered.
	SectionDoneMsg struct {
		Category catalog.Category
	}

	// RestartMsg discards all answers and starts over.
	RestartMsg struct{}
)
