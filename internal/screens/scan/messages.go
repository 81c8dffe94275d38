package scan

import (
	"time"

	"github.com/abhisek/ecosort/internal/classify"
)

// scanTickMsg fires at the poll cadence to trigger the next classification.
type scanTickMsg time.Time

// scanResultMsg carries one classifier outcome back to the screen.
type scanResultMsg struct {
	Result classify.Result
	Err    error
}

// sessionEndMsg triggers the end-of-session flow.
type sessionEndMsg struct{}
