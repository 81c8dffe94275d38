package interpret

import (
	"errors"
	"strings"

	"github.com/abhisek/ecosort/internal/classify"
	"github.com/abhisek/ecosort/internal/waste"
)

// errorLabels maps an error kind to the inline label shown to the user.
var errorLabels = map[classify.ErrorKind]string{
	classify.KindTimeout:            "Detection timed out — hold the item steady",
	classify.KindPermissionHardware: "Camera unavailable — check app permissions",
	classify.KindModelResource:      "Classifier failed to start — restart the app",
	classify.KindOther:              "Detection error",
}

// InterpretError converts a classifier failure into an interpretation and
// bumps the error streak. Structured *classify.ScanError values carry their
// kind; anything else goes through the legacy substring match.
func InterpretError(err error, st *State) Interpretation {
	st.ErrorStreak++

	var scanErr *classify.ScanError
	kind := classify.KindOther
	if errors.As(err, &scanErr) {
		kind = scanErr.Kind
	} else if err != nil {
		kind = ClassifyError(err.Error())
	}

	return Interpretation{
		Label:     errorLabels[kind],
		Category:  waste.Unknown,
		Severity:  SeverityError,
		IsError:   true,
		ErrorKind: kind,
		Escalate:  st.ErrorStreak >= ErrorEscalationCount && !kind.Recoverable(),
	}
}

// ClassifyError buckets free-text error messages by substring. Best effort:
// anything ambiguous lands in KindOther. Kept for compatibility with
// classifiers that return plain errors.
func ClassifyError(msg string) classify.ErrorKind {
	m := strings.ToLower(msg)
	switch {
	case strings.Contains(m, "timeout"), strings.Contains(m, "timed out"):
		return classify.KindTimeout
	case strings.Contains(m, "camera"), strings.Contains(m, "permission"):
		return classify.KindPermissionHardware
	case strings.Contains(m, "model"), strings.Contains(m, "memory"):
		return classify.KindModelResource
	default:
		return classify.KindOther
	}
}
