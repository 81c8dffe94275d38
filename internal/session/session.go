// Package session owns the state of one continuous scanning session: the
// interpreter counters, running tallies, and the summary shown at the end.
// A session is created when the scan screen opens and discarded when it
// closes; nothing here persists across sessions.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/ecosort/internal/interpret"
	"github.com/abhisek/ecosort/internal/waste"
)

// ScanRecord is one interpreted scan, kept for the summary screen.
type ScanRecord struct {
	Label         string
	Category      waste.Category
	Confidence    float64
	Tip           string
	LowConfidence bool
	Help          bool
	Error         bool
	At            time.Time
}

// ScanSession is the mutable state of one scanning session.
type ScanSession struct {
	ID        string
	StartedAt time.Time

	// State holds the interpreter's rolling counters. Owned exclusively
	// by this session; passed by pointer into every interpret call.
	State interpret.State

	Counts     map[waste.Category]int
	TotalScans int
	Errors     int
	HelpShown  int

	records []ScanRecord
}

// New creates a fresh session with zeroed counters.
func New(now time.Time) *ScanSession {
	return &ScanSession{
		ID:        uuid.New().String(),
		StartedAt: now,
		Counts:    make(map[waste.Category]int),
	}
}

// Record tallies one interpreted scan.
func (s *ScanSession) Record(rec ScanRecord) {
	s.TotalScans++
	switch {
	case rec.Error:
		s.Errors++
	case rec.Help:
		s.HelpShown++
	default:
		s.Counts[rec.Category]++
	}
	s.records = append(s.records, rec)
}

// Records returns the scans recorded so far, oldest first.
func (s *ScanSession) Records() []ScanRecord {
	return s.records
}

// Summary is the end-of-session rollup.
type Summary struct {
	SessionID   string
	Duration    time.Duration
	TotalScans  int
	Errors      int
	HelpShown   int
	Counts      map[waste.Category]int
	TopCategory waste.Category
	TopCount    int
}

// Summarize builds the summary as of endedAt.
func (s *ScanSession) Summarize(endedAt time.Time) Summary {
	sum := Summary{
		SessionID:  s.ID,
		Duration:   endedAt.Sub(s.StartedAt),
		TotalScans: s.TotalScans,
		Errors:     s.Errors,
		HelpShown:  s.HelpShown,
		Counts:     s.Counts,
	}
	for _, c := range waste.All() {
		if s.Counts[c] > sum.TopCount {
			sum.TopCategory = c
			sum.TopCount = s.Counts[c]
		}
	}
	return sum
}
