package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/minatgo/minatgo/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for Value out of Max.
type ProgressBar struct {
	Label string
	Value int
	Max   int
	// Suffix replaces the default percentage text when set.
	Suffix string
	Width  int
	// Highlight draws the filled part in the accent color.
	Highlight bool
}

// Fraction returns Value/Max clamped to [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Max <= 0 {
		return 0
	}
	return min(max(float64(p.Value)/float64(p.Max), 0), 1)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := p.Suffix
	if suffix == "" {
		suffix = fmt.Sprintf("%3d%%", int(p.Fraction()*100+0.5))
	}
	suffix = "  " + suffix

	barWidth := max(p.Width-lipgloss.Width(result)-lipgloss.Width(suffix), 4)
	filled := int(float64(barWidth) * p.Fraction())

	fill := theme.ProgressFilled
	if p.Highlight {
		fill = lipgloss.NewStyle().Background(theme.Accent)
	}
	result += fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return result + lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
}
