package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecosort/internal/router"
	"github.com/abhisek/ecosort/internal/screen"
	"github.com/abhisek/ecosort/internal/store"
	"github.com/abhisek/ecosort/internal/ui/layout"
	"github.com/abhisek/ecosort/internal/ui/theme"
	"github.com/abhisek/ecosort/internal/waste"
)

type historyLoadedMsg struct {
	Scans []store.ScanRecord
	Err   error
}

// HistoryScreen lists recent scans from the event store.
type HistoryScreen struct {
	eventRepo store.EventRepo
	scans     []store.ScanRecord
	offset    int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		scans, err := s.eventRepo.RecentScans(context.Background(), 100)
		return historyLoadedMsg{Scans: scans, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.scans = msg.Scans
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.scans)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return layout.Center(theme.Hint.Render("Loading..."), width, height)
	}
	if s.errMsg != "" {
		return layout.Center(theme.Alert.Render("Could not load history: "+s.errMsg), width, height)
	}
	if len(s.scans) == 0 {
		return layout.Center(theme.Hint.Render("No scans yet. Start a session from the home screen."), width, height)
	}

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	end := s.offset + visible
	if end > len(s.scans) {
		end = len(s.scans)
	}

	var b strings.Builder
	for _, rec := range s.scans[s.offset:end] {
		b.WriteString(renderRow(rec))
		b.WriteString("\n")
	}
	b.WriteString(theme.Muted.Render(fmt.Sprintf("  %d–%d of %d", s.offset+1, end, len(s.scans))))

	return b.String()
}

func renderRow(rec store.ScanRecord) string {
	ts := theme.Muted.Render(rec.CreatedAt.Format("Jan 02 15:04"))

	var label string
	if rec.IsError {
		label = theme.Alert.Render("⚠ " + rec.Label)
	} else {
		cat := waste.Category(rec.Category)
		label = lipgloss.NewStyle().
			Foreground(theme.CategoryColor(cat)).
			Render(fmt.Sprintf("%s %s", cat.Symbol(), rec.Label))
	}

	conf := ""
	if !rec.IsError && rec.Confidence > 0 {
		conf = theme.Muted.Render(fmt.Sprintf(" %3.0f%%", rec.Confidence*100))
	}

	return fmt.Sprintf("  %s  %-40s%s", ts, label, conf)
}
