package classify

import (
	"context"
	"time"

	"github.com/abhisek/ecosort/internal/waste"
)

// Result is a single classification produced by a Classifier.
type Result struct {
	Category   waste.Category
	Confidence float64 // in [0, 1]
	CapturedAt time.Time
}

// Classifier produces one classification per call. The scan screen invokes it
// on every poll tick and once more on an explicit capture.
type Classifier interface {
	Scan(ctx context.Context) (Result, error)
}
