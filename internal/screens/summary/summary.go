package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecosort/internal/router"
	"github.com/abhisek/ecosort/internal/screen"
	sess "github.com/abhisek/ecosort/internal/session"
	"github.com/abhisek/ecosort/internal/ui/layout"
	"github.com/abhisek/ecosort/internal/ui/theme"
	"github.com/abhisek/ecosort/internal/waste"
)

// SummaryScreen shows the end-of-session rollup.
type SummaryScreen struct {
	summary sess.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the given summary.
func New(summary sess.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "any key", Description: "Back to home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(theme.Body.Render(fmt.Sprintf("Scanned %d items in %dm %ds", sum.TotalScans, mins, secs)))
	b.WriteString("\n\n")

	for _, c := range waste.All() {
		n := sum.Counts[c]
		if n == 0 {
			continue
		}
		line := lipgloss.NewStyle().
			Foreground(theme.CategoryColor(c)).
			Render(fmt.Sprintf("%s %-12s %d", c.Symbol(), c, n))
		b.WriteString(line)
		b.WriteString("\n")
	}

	if sum.TopCount > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Mostly %s today.", strings.ToLower(string(sum.TopCategory)))))
	}
	if sum.Errors > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render(fmt.Sprintf("%d scan(s) failed.", sum.Errors)))
	}

	card := theme.Card.Width(min(width-10, 50)).Render(b.String())
	return layout.Center(card, width, height)
}
