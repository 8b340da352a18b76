package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/growthfit/internal/ui/theme"
)

const bannerArt = `
  ____                    _   _     _____ _ _
 / ___|_ __ _____      _| |_| |__ |  ___(_) |_
| |  _| '__/ _ \ \ /\ / / __| '_ \| |_  | | __|
| |_| | | | (_) \ V  V /| |_| | | |  _| | | |_
 \____|_|  \___/ \_/\_/  \__|_| |_|_|   |_|\__|`

const bannerCompact = "G R O W T H F I T"

// RenderBanner returns the GrowthFit banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 52 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
