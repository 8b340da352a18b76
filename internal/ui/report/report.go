// Package report renders a scored assessment for the terminal.
package report

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/growthfit/internal/scoring"
	"github.com/abhisek/growthfit/internal/ui/components"
	"github.com/abhisek/growthfit/internal/ui/layout"
	"github.com/abhisek/growthfit/internal/ui/theme"
)

// RetakeAdvice closes every report.
const RetakeAdvice = "Want to improve your scores? Focus on the recommended next steps and retake the assessment in 3-6 months."

const maxWidth = 100

// Render formats r as a report no wider than width.
func Render(r scoring.Result, width int) string {
	w := min(max(width, 40), maxWidth)

	blocks := []string{
		renderHeadline(r, w),
		renderScores(r, w),
		renderWiscar(r, w),
		renderList("Key Insights", r.Insights, bullet, w),
		renderCareers(r.CareerPaths, w),
		renderList("Your Next Steps", r.NextSteps, numbered, w),
		theme.Hint.Width(w).Render(RetakeAdvice),
	}
	return strings.Join(blocks, "\n\n")
}

// RecommendationColor returns the badge color for rec.
func RecommendationColor(rec scoring.Recommendation) color.Color {
	switch rec {
	case scoring.RecommendYes:
		return theme.Success
	case scoring.RecommendMaybe:
		return theme.Accent
	default:
		return theme.Error
	}
}

func recommendationIcon(rec scoring.Recommendation) string {
	switch rec {
	case scoring.RecommendYes:
		return "✔"
	case scoring.RecommendMaybe:
		return "!"
	default:
		return "✘"
	}
}

func renderHeadline(r scoring.Result, w int) string {
	c := RecommendationColor(r.Recommendation)
	title := lipgloss.NewStyle().
		Foreground(c).
		Bold(true).
		Width(w).
		Render(recommendationIcon(r.Recommendation) + "  " + r.Recommendation.Headline())

	overall := fmt.Sprintf("Overall Readiness Score  %d/100", r.OverallScore)
	bar := components.ProgressBar{
		Percent: float64(r.OverallScore) / 100,
		Width:   w,
		Fill:    c,
	}
	conf := theme.Subtitle.Render(fmt.Sprintf("Confidence Level: %d%%", r.Confidence))

	return strings.Join([]string{title, "", theme.Body.Bold(true).Render(overall), bar.View(), conf}, "\n")
}

func renderScores(r scoring.Result, w int) string {
	rows := []struct {
		label string
		score int
	}{
		{"Psychological Fit", r.PsychometricScore},
		{"Technical Readiness", r.TechnicalScore},
		{"WISCAR Composite", r.WiscarComposite},
	}

	lines := []string{theme.Heading.Render("Detailed Scores")}
	for _, row := range rows {
		lines = append(lines, scoreLine(row.label, row.score, 22, w))
	}
	return strings.Join(lines, "\n")
}

func renderWiscar(r scoring.Result, w int) string {
	lines := []string{theme.Heading.Render("WISCAR Framework")}
	for _, d := range scoring.AllDimensions() {
		v, ok := r.WiscarScores[d]
		if !ok {
			continue
		}
		lines = append(lines, scoreLine(scoring.DimensionDisplayName(d), v, 22, w))
	}
	return strings.Join(lines, "\n")
}

// scoreLine renders "label ▇▇▇▇░░  73/100" with a fixed label column.
func scoreLine(label string, score, labelWidth, w int) string {
	name := theme.Body.Width(labelWidth).Render(label)
	value := lipgloss.NewStyle().
		Foreground(theme.ScoreColor(score)).
		Bold(true).
		Render(fmt.Sprintf("%3d/100", score))

	barWidth := 30
	if layout.IsCompactWidth(w) {
		barWidth = max(w-labelWidth-12, 4)
		barWidth = min(barWidth, 30)
	}
	bar := components.ProgressBar{
		Percent: float64(score) / 100,
		Width:   barWidth,
		Fill:    theme.ScoreColor(score),
	}
	return name + bar.View() + "  " + value
}

func bullet(int) string { return "• " }

func numbered(i int) string { return fmt.Sprintf("%d. ", i+1) }

func renderList(title string, items []string, marker func(int) string, w int) string {
	lines := []string{theme.Heading.Render(title)}
	for i, item := range items {
		m := marker(i)
		body := theme.Body.Width(max(w-lipgloss.Width(m), 10)).Render(item)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, theme.Selected.Render(m), body))
	}
	return strings.Join(lines, "\n")
}

func renderCareers(paths []scoring.CareerMatch, w int) string {
	lines := []string{theme.Heading.Render("Recommended Career Paths")}
	for _, p := range paths {
		match := lipgloss.NewStyle().
			Foreground(theme.ScoreColor(p.Match)).
			Render(fmt.Sprintf("%d%% match", p.Match))
		title := theme.Body.Bold(true).Render(p.Title)
		gap := max(w-lipgloss.Width(title)-lipgloss.Width(match), 1)
		lines = append(lines,
			title+strings.Repeat(" ", gap)+match,
			theme.Subtitle.Width(w).Render(p.Description),
		)
	}
	return strings.Join(lines, "\n")
}
