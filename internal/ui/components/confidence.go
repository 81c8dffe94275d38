package components

import (
	"fmt"
	"strings"

	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecosort/internal/ui/theme"
)

// ConfidenceBar renders a horizontal bar for a confidence value in [0,1].
type ConfidenceBar struct {
	Percent float64
	Width   int
	Color   color.Color
}

// NewConfidenceBar creates a bar with the given fill color.
func NewConfidenceBar(percent float64, width int, c color.Color) ConfidenceBar {
	return ConfidenceBar{Percent: percent, Width: width, Color: c}
}

// View renders the bar with a trailing percentage.
func (b ConfidenceBar) View() string {
	barWidth := b.Width - 6 // room for " 100%"
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * b.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	bar := lipgloss.NewStyle().
		Background(b.Color).
		Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	pct := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %3.0f%%", b.Percent*100))

	return bar + pct
}
