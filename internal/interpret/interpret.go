// Package interpret turns raw classifier output into what the scan screen
// shows: a label, a severity, and escalation flags driven by short rolling
// streaks. Everything here is a pure decision table over explicit state.
package interpret

import (
	"github.com/abhisek/ecosort/internal/classify"
	"github.com/abhisek/ecosort/internal/waste"
)

// Confidence thresholds. Lower bounds are half-open: exactly 0.3 is
// display-worthy, exactly 0.1 is "no clear object".
const (
	DisplayThreshold       = 0.3
	LowConfidenceThreshold = 0.1
)

// Streak limits before the interpreter escalates.
const (
	// HelpEscalationCount is the number of consecutive sub-threshold scans
	// before the help message replaces the "no clear object" label.
	HelpEscalationCount = 5

	// ErrorEscalationCount is the number of consecutive errors before a
	// non-recoverable error becomes a blocking prompt.
	ErrorEscalationCount = 3
)

// Labels emitted for non-category outcomes. The tip selector recognizes
// these strings, so they must stay in sync with the tip pools.
const (
	LabelNoDetection = "No clear object detected"
	LabelAdjustHelp  = "Try adjusting camera angle or lighting"
	LabelDetectError = "Detection error"

	lowConfidencePrefix = "Possible "
)

// Severity tags the interpretation for UI coloring.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityDim
	SeverityWarn
	SeverityError
)

// State holds the per-session rolling counters. It is owned by the caller,
// created fresh at session start, and never shared across sessions.
type State struct {
	LowConfidenceStreak int
	ErrorStreak         int
}

// Interpretation is what the UI renders for one scan.
type Interpretation struct {
	Label           string
	Category        waste.Category
	Severity        Severity
	IsHelpMessage   bool
	IsLowConfidence bool
	IsError         bool
	ErrorKind       classify.ErrorKind

	// Escalate asks the UI to replace the inline label with a blocking
	// prompt. Set only for persistent non-recoverable errors.
	Escalate bool
}

// Interpret buckets a successful classification against the thresholds and
// updates st. Total function: out-of-range confidence is clamped.
func Interpret(res classify.Result, st *State) Interpretation {
	conf := clamp01(res.Confidence)
	st.ErrorStreak = 0

	switch {
	case conf < LowConfidenceThreshold:
		st.LowConfidenceStreak++
		if st.LowConfidenceStreak >= HelpEscalationCount {
			st.LowConfidenceStreak = 0
			return Interpretation{
				Label:         LabelAdjustHelp,
				Category:      waste.Unknown,
				Severity:      SeverityWarn,
				IsHelpMessage: true,
			}
		}
		return Interpretation{
			Label:    LabelNoDetection,
			Category: waste.Unknown,
			Severity: SeverityDim,
		}

	case conf >= DisplayThreshold:
		st.LowConfidenceStreak = 0
		return Interpretation{
			Label:    string(res.Category),
			Category: res.Category,
			Severity: SeverityNormal,
		}

	default:
		// Borderline: show a hedged label, leave the streak untouched.
		return Interpretation{
			Label:           lowConfidencePrefix + string(res.Category),
			Category:        res.Category,
			Severity:        SeverityDim,
			IsLowConfidence: true,
		}
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
