package scan

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecosort/internal/interpret"
	"github.com/abhisek/ecosort/internal/ui/components"
	"github.com/abhisek/ecosort/internal/ui/layout"
	"github.com/abhisek/ecosort/internal/ui/theme"
	"github.com/abhisek/ecosort/internal/waste"
)

func (s *ScanScreen) View(width, height int) string {
	if s.escalated {
		return s.renderEscalation(width, height)
	}

	var sections []string

	sections = append(sections, s.renderStatusLine())

	if s.current == nil {
		sections = append(sections, theme.Hint.Render("Point the scanner at a waste item..."))
	} else {
		sections = append(sections, s.renderResult(width))
		sections = append(sections, s.renderTipCard(width))
	}

	sections = append(sections, s.renderTallies())

	content := strings.Join(sections, "\n\n")
	return layout.Center(content, width, height)
}

func (s *ScanScreen) renderStatusLine() string {
	if s.paused {
		return theme.Muted.Render("⏸ Paused — press P to resume")
	}
	return s.spinner.View() + theme.Muted.Render("  scanning")
}

func (s *ScanScreen) renderResult(width int) string {
	d := s.current
	style := labelStyle(d.interp)

	label := style.Render(categorySymbol(d.interp) + " " + d.interp.Label)

	lines := []string{label}
	if !d.interp.IsError && !d.interp.IsHelpMessage && d.interp.Label != interpret.LabelNoDetection {
		bar := components.NewConfidenceBar(d.confidence, min(width-20, 40), theme.CategoryColor(d.interp.Category))
		lines = append(lines, bar.View())
		lines = append(lines, theme.Muted.Render(d.interp.Category.Blurb()))
	}

	return strings.Join(lines, "\n")
}

func (s *ScanScreen) renderTipCard(width int) string {
	cardWidth := min(width-10, 60)
	return theme.Card.Width(cardWidth).Render(
		theme.Hint.Render("TIP") + "\n" +
			theme.Body.Render(s.current.tip),
	)
}

func (s *ScanScreen) renderTallies() string {
	if s.session == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, c := range waste.All() {
		n := s.session.Counts[c]
		if n == 0 {
			continue
		}
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.CategoryColor(c)).
			Render(fmt.Sprintf("%s %d", c.Symbol(), n)))
	}
	if len(parts) == 0 {
		return ""
	}
	return theme.Muted.Render("This session:  ") + strings.Join(parts, "  ")
}

func (s *ScanScreen) renderEscalation(width, height int) string {
	msg := "The scanner keeps failing."
	tip := "Restart the app; if the problem persists, check the device."
	if d := s.current; d != nil {
		msg = d.interp.Label
		tip = d.tip
	}

	card := theme.Card.
		BorderForeground(theme.Error).
		Width(min(width-10, 56)).
		Render(
			theme.Alert.Render("⚠ Scanning problem") + "\n\n" +
				theme.Body.Render(msg) + "\n\n" +
				theme.Body.Render(tip) + "\n\n" +
				theme.Hint.Render("Press any key to continue"),
		)
	return layout.Center(card, width, height)
}

// labelStyle maps the interpretation severity onto a style.
func labelStyle(in interpret.Interpretation) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch in.Severity {
	case interpret.SeverityNormal:
		return base.Foreground(theme.CategoryColor(in.Category))
	case interpret.SeverityWarn:
		return base.Foreground(theme.Warning)
	case interpret.SeverityError:
		return base.Foreground(theme.Error)
	default:
		return base.Foreground(theme.TextDim)
	}
}

func categorySymbol(in interpret.Interpretation) string {
	if in.IsError {
		return "⚠"
	}
	if in.IsHelpMessage || in.Label == interpret.LabelNoDetection {
		return "◌"
	}
	return in.Category.Symbol()
}
