// Package scan implements the live scanning screen: a periodic poll of the
// classifier, interpretation of each result, and the tip panel. This is the
// scheduling loop the interpreter and tip selector are driven from.
package scan

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ecosort/internal/classify"
	"github.com/abhisek/ecosort/internal/interpret"
	"github.com/abhisek/ecosort/internal/router"
	"github.com/abhisek/ecosort/internal/screen"
	"github.com/abhisek/ecosort/internal/screens/summary"
	sess "github.com/abhisek/ecosort/internal/session"
	"github.com/abhisek/ecosort/internal/store"
	"github.com/abhisek/ecosort/internal/tips"
	"github.com/abhisek/ecosort/internal/ui/components"
	"github.com/abhisek/ecosort/internal/ui/layout"
)

// display is the most recent interpreted scan, ready to render.
type display struct {
	interp     interpret.Interpretation
	confidence float64
	tip        string
	at         time.Time
}

// ScanScreen drives one scanning session.
type ScanScreen struct {
	classifier classify.Classifier
	selector   *tips.Selector
	eventRepo  store.EventRepo // nil when history is disabled
	interval   time.Duration

	session   *sess.ScanSession
	spinner   components.Spinner
	current   *display
	paused    bool
	inFlight  bool
	escalated bool
}

var _ screen.Screen = (*ScanScreen)(nil)
var _ screen.KeyHintProvider = (*ScanScreen)(nil)

// New creates a ScanScreen. The session and its counters are created in
// Init and discarded when the screen is replaced.
func New(classifier classify.Classifier, selector *tips.Selector, eventRepo store.EventRepo, interval time.Duration) *ScanScreen {
	if interval <= 0 {
		interval = 1500 * time.Millisecond
	}
	return &ScanScreen{
		classifier: classifier,
		selector:   selector,
		eventRepo:  eventRepo,
		interval:   interval,
		spinner:    components.NewSpinner(),
	}
}

func (s *ScanScreen) Init() tea.Cmd {
	s.session = sess.New(time.Now())

	cmds := []tea.Cmd{s.tickCmd(), s.spinner.Init()}
	if s.eventRepo != nil {
		id := s.session.ID
		repo := s.eventRepo
		cmds = append(cmds, func() tea.Msg {
			_ = repo.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID: id,
				Action:    "start",
			})
			return nil
		})
	}
	return tea.Batch(cmds...)
}

func (s *ScanScreen) Title() string {
	return "Scanning"
}

func (s *ScanScreen) KeyHints() []layout.KeyHint {
	if s.escalated {
		return []layout.KeyHint{
			{Key: "any key", Description: "Dismiss"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Space", Description: "Capture now"},
	}
	if s.paused {
		hints = append(hints, layout.KeyHint{Key: "P", Description: "Resume"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "P", Description: "Pause"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "End session"})
	return hints
}

func (s *ScanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scanTickMsg:
		return s.handleTick()

	case scanResultMsg:
		return s.handleResult(msg)

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

func (s *ScanScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.paused || s.escalated || s.inFlight {
		return s, s.tickCmd()
	}
	s.inFlight = true
	return s, tea.Batch(s.scanCmd(), s.tickCmd())
}

func (s *ScanScreen) handleResult(msg scanResultMsg) (screen.Screen, tea.Cmd) {
	s.inFlight = false

	// Results landing under a blocking prompt are dropped; the streak
	// that caused the prompt has already been acted on.
	if s.escalated || s.session == nil {
		return s, nil
	}

	var interp interpret.Interpretation
	var confidence float64
	if msg.Err != nil {
		interp = interpret.InterpretError(msg.Err, &s.session.State)
	} else {
		interp = interpret.Interpret(msg.Result, &s.session.State)
		confidence = msg.Result.Confidence
	}

	tip := s.selector.Select(interp.Label)
	now := time.Now()

	s.current = &display{
		interp:     interp,
		confidence: confidence,
		tip:        tip,
		at:         now,
	}

	s.session.Record(sess.ScanRecord{
		Label:         interp.Label,
		Category:      interp.Category,
		Confidence:    confidence,
		Tip:           tip,
		LowConfidence: interp.IsLowConfidence,
		Help:          interp.IsHelpMessage,
		Error:         interp.IsError,
		At:            now,
	})

	if interp.Escalate {
		s.escalated = true
	}

	return s, s.persistScanCmd(interp, confidence, tip)
}

func (s *ScanScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.session == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	sum := s.session.Summarize(time.Now())

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:    sum.SessionID,
			Action:       "end",
			TotalScans:   sum.TotalScans,
			Errors:       sum.Errors,
			DurationSecs: int(sum.Duration.Seconds()),
			TopCategory:  string(sum.TopCategory),
		})
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (s *ScanScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Blocking prompt: any key dismisses and clears the error streak.
	if s.escalated {
		s.escalated = false
		s.session.State.ErrorStreak = 0
		return s, nil
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return sessionEndMsg{} }
	case "p":
		s.paused = !s.paused
		return s, nil
	case " ", "space", "enter":
		// Explicit capture: classify immediately, outside the cadence.
		if !s.inFlight {
			s.inFlight = true
			return s, s.scanCmd()
		}
	}
	return s, nil
}

// scanCmd runs one classification off the UI goroutine.
func (s *ScanScreen) scanCmd() tea.Cmd {
	classifier := s.classifier
	return func() tea.Msg {
		res, err := classifier.Scan(context.Background())
		return scanResultMsg{Result: res, Err: err}
	}
}

// persistScanCmd appends the scan to history. Failures never surface; the
// history log is cosmetic.
func (s *ScanScreen) persistScanCmd(interp interpret.Interpretation, confidence float64, tip string) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	repo := s.eventRepo
	data := store.ScanEventData{
		SessionID:     s.session.ID,
		Category:      string(interp.Category),
		Label:         interp.Label,
		Confidence:    confidence,
		Tip:           tip,
		LowConfidence: interp.IsLowConfidence,
		HelpMessage:   interp.IsHelpMessage,
		IsError:       interp.IsError,
		ErrorKind:     string(interp.ErrorKind),
	}
	return func() tea.Msg {
		_ = repo.AppendScanEvent(context.Background(), data)
		return nil
	}
}

func (s *ScanScreen) tickCmd() tea.Cmd {
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return scanTickMsg(t)
	})
}

// Scans reports how many scans this session has recorded, for the header.
func (s *ScanScreen) Scans() int {
	if s.session == nil {
		return 0
	}
	return s.session.TotalScans
}
