package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecosort/internal/classify"
	"github.com/abhisek/ecosort/internal/router"
	"github.com/abhisek/ecosort/internal/screen"
	"github.com/abhisek/ecosort/internal/screens/history"
	scanscreen "github.com/abhisek/ecosort/internal/screens/scan"
	"github.com/abhisek/ecosort/internal/store"
	"github.com/abhisek/ecosort/internal/tips"
	"github.com/abhisek/ecosort/internal/ui/components"
	"github.com/abhisek/ecosort/internal/ui/layout"
	"github.com/abhisek/ecosort/internal/ui/theme"
	"github.com/abhisek/ecosort/internal/waste"
)

// HomeScreen is the app's entry screen: the menu plus lifetime stats.
type HomeScreen struct {
	menu   components.Menu
	counts map[string]int
	total  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the HomeScreen. eventRepo may be nil (history disabled).
func New(classifier classify.Classifier, selector *tips.Selector, eventRepo store.EventRepo, interval time.Duration) *HomeScreen {
	var counts map[string]int
	var total int
	if eventRepo != nil {
		counts, _ = eventRepo.CategoryCounts(context.Background())
		for _, n := range counts {
			total += n
		}
	}

	items := []components.MenuItem{
		{Label: "START SCANNING", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: scanscreen.New(classifier, selector, eventRepo, interval),
				}
			}
		}},
		{Label: "HISTORY", Disabled: eventRepo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:   components.NewMenu(items),
		counts: counts,
		total:  total,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("E C O S O R T"))
	sections = append(sections, theme.Subtitle.Render("Point. Scan. Sort it right."))

	if h.total > 0 {
		sections = append(sections, h.renderStatsBar())
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return layout.Center(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) renderStatsBar() string {
	parts := make([]string, 0, 5)
	parts = append(parts, theme.Muted.Render(fmt.Sprintf("%d items scanned", h.total)))
	for _, c := range waste.All() {
		n := h.counts[string(c)]
		if n == 0 {
			continue
		}
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.CategoryColor(c)).
			Render(fmt.Sprintf("%s %d", c.Symbol(), n)))
	}
	return strings.Join(parts, "   ")
}
