package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ecosort/internal/classify"
	"github.com/abhisek/ecosort/internal/router"
	"github.com/abhisek/ecosort/internal/screen"
	"github.com/abhisek/ecosort/internal/screens/home"
	"github.com/abhisek/ecosort/internal/store"
	"github.com/abhisek/ecosort/internal/tips"
	"github.com/abhisek/ecosort/internal/ui/layout"
)

// Options carries the app's injected dependencies.
type Options struct {
	Classifier classify.Classifier
	Selector   *tips.Selector

	// EventRepo may be nil; the app runs without history.
	EventRepo store.EventRepo

	// ScanInterval is the scan screen's poll cadence.
	ScanInterval time.Duration
}

// scanCounter is implemented by screens that track a scan count for the
// header (currently only the scan screen).
type scanCounter interface {
	Scans() int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Classifier, opts.Selector, opts.EventRepo, opts.ScanInterval)
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Screens own esc: the scan screen turns it into a session summary,
	// list screens pop themselves.
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	scans := 0
	if active != nil {
		title = active.Title()
		if sc, ok := active.(scanCounter); ok {
			scans = sc.Scans()
		}
	}

	header := layout.RenderHeader(title, scans, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); hints != nil {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
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
