package classify

import (
	"context"
	"math/rand"
	"time"

	"github.com/abhisek/ecosort/internal/waste"
)

// MockConfig tunes the simulated classifier.
type MockConfig struct {
	// ErrorRate is the probability in [0,1] that a scan fails.
	ErrorRate float64

	// LowRate is the probability that a successful scan lands below the
	// low-confidence threshold (simulating an empty or unclear frame).
	LowRate float64

	// MidRate is the probability of a borderline confidence in [0.1, 0.3).
	MidRate float64

	// Weights biases the category draw. Zero-weight categories never appear.
	Weights map[waste.Category]int
}

// DefaultMockConfig returns the tuning used by the demo app.
func DefaultMockConfig() MockConfig {
	return MockConfig{
		ErrorRate: 0.04,
		LowRate:   0.18,
		MidRate:   0.15,
		Weights: map[waste.Category]int{
			waste.Recyclable:  4,
			waste.Compostable: 3,
			waste.Trash:       3,
			waste.Unknown:     1,
		},
	}
}

// Mock is the simulated classifier. No model is loaded; categories and
// confidences come from the injected random source, timestamps from the
// injected clock. A nil rng falls back to a time-seeded source.
type Mock struct {
	cfg MockConfig
	rng *rand.Rand
	now func() time.Time
}

var _ Classifier = (*Mock)(nil)

// NewMock creates a Mock with the given config and random source.
func NewMock(cfg MockConfig, rng *rand.Rand) *Mock {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Mock{cfg: cfg, rng: rng, now: time.Now}
}

// WithClock overrides the timestamp source. Used by tests.
func (m *Mock) WithClock(now func() time.Time) *Mock {
	m.now = now
	return m
}

// faultMessages follow the legacy free-text conventions that the substring
// classifier in interpret recognizes.
var faultMessages = []ScanError{
	{Kind: KindTimeout, Message: "classification timeout after 5000ms"},
	{Kind: KindPermissionHardware, Message: "camera unavailable: permission denied"},
	{Kind: KindModelResource, Message: "model failed to load"},
	{Kind: KindModelResource, Message: "out of memory while allocating tensor buffer"},
	{Kind: KindOther, Message: "unexpected classifier failure"},
}

func (m *Mock) Scan(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if m.rng.Float64() < m.cfg.ErrorRate {
		e := faultMessages[m.rng.Intn(len(faultMessages))]
		return Result{}, &e
	}

	return Result{
		Category:   m.drawCategory(),
		Confidence: m.drawConfidence(),
		CapturedAt: m.now(),
	}, nil
}

// drawCategory picks a category proportionally to its weight.
func (m *Mock) drawCategory() waste.Category {
	total := 0
	for _, c := range waste.All() {
		total += m.cfg.Weights[c]
	}
	if total <= 0 {
		return waste.Unknown
	}
	n := m.rng.Intn(total)
	for _, c := range waste.All() {
		n -= m.cfg.Weights[c]
		if n < 0 {
			return c
		}
	}
	return waste.Unknown
}

// drawConfidence picks a band first, then a uniform value inside it. The
// bands line up with the interpreter thresholds so all three buckets show up
// during a demo.
func (m *Mock) drawConfidence() float64 {
	r := m.rng.Float64()
	switch {
	case r < m.cfg.LowRate:
		return m.rng.Float64() * 0.1
	case r < m.cfg.LowRate+m.cfg.MidRate:
		return 0.1 + m.rng.Float64()*0.2
	default:
		return 0.3 + m.rng.Float64()*0.68
	}
}
