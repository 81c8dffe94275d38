package classify

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"
)

func TestMock_ConfidenceAlwaysInRange(t *testing.T) {
	m := NewMock(DefaultMockConfig(), rand.New(rand.NewSource(1)))
	m.cfg.ErrorRate = 0

	for i := 0; i < 500; i++ {
		res, err := m.Scan(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Confidence < 0 || res.Confidence > 1 {
			t.Fatalf("confidence %f out of range", res.Confidence)
		}
		if res.Category == "" {
			t.Fatal("empty category")
		}
	}
}

func TestMock_DeterministicWithSeed(t *testing.T) {
	a := NewMock(DefaultMockConfig(), rand.New(rand.NewSource(99)))
	b := NewMock(DefaultMockConfig(), rand.New(rand.NewSource(99)))

	for i := 0; i < 50; i++ {
		ra, ea := a.Scan(context.Background())
		rb, eb := b.Scan(context.Background())

		if (ea == nil) != (eb == nil) {
			t.Fatalf("call %d: error divergence: %v vs %v", i, ea, eb)
		}
		if ea == nil && (ra.Category != rb.Category || ra.Confidence != rb.Confidence) {
			t.Fatalf("call %d: result divergence: %+v vs %+v", i, ra, rb)
		}
	}
}

func TestMock_ErrorRateOne(t *testing.T) {
	cfg := DefaultMockConfig()
	cfg.ErrorRate = 1
	m := NewMock(cfg, rand.New(rand.NewSource(3)))

	for i := 0; i < 20; i++ {
		_, err := m.Scan(context.Background())
		if err == nil {
			t.Fatal("expected every scan to fail")
		}
		var scanErr *ScanError
		if !errors.As(err, &scanErr) {
			t.Fatalf("error is not a *ScanError: %v", err)
		}
		if scanErr.Kind == "" || scanErr.Message == "" {
			t.Fatalf("incomplete scan error: %+v", scanErr)
		}
	}
}

func TestMock_UsesInjectedClock(t *testing.T) {
	cfg := DefaultMockConfig()
	cfg.ErrorRate = 0
	fixed := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	m := NewMock(cfg, rand.New(rand.NewSource(5))).WithClock(func() time.Time { return fixed })

	res, err := m.Scan(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.CapturedAt.Equal(fixed) {
		t.Errorf("CapturedAt = %v, want %v", res.CapturedAt, fixed)
	}
}

func TestMock_CancelledContext(t *testing.T) {
	m := NewMock(DefaultMockConfig(), rand.New(rand.NewSource(5)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Scan(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestErrorKind_Recoverable(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want bool
	}{
		{KindTimeout, true},
		{KindOther, true},
		{KindPermissionHardware, false},
		{KindModelResource, false},
	}
	for _, tt := range tests {
		if got := tt.kind.Recoverable(); got != tt.want {
			t.Errorf("%q.Recoverable() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
