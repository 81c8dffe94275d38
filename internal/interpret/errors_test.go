package interpret

import (
	"errors"
	"testing"

	"github.com/abhisek/ecosort/internal/classify"
)

func TestClassifyError_Substrings(t *testing.T) {
	tests := []struct {
		msg  string
		want classify.ErrorKind
	}{
		{"classification timeout after 5000ms", classify.KindTimeout},
		{"request timed out", classify.KindTimeout},
		{"camera unavailable: permission denied", classify.KindPermissionHardware},
		{"PERMISSION denied by OS", classify.KindPermissionHardware},
		{"model failed to load", classify.KindModelResource},
		{"out of memory while allocating tensor buffer", classify.KindModelResource},
		{"something exploded", classify.KindOther},
		{"", classify.KindOther},
	}

	for _, tt := range tests {
		if got := ClassifyError(tt.msg); got != tt.want {
			t.Errorf("ClassifyError(%q) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

func TestInterpretError_StructuredKindWins(t *testing.T) {
	var st State
	// Message says "timeout" but the structured kind is authoritative.
	err := &classify.ScanError{Kind: classify.KindModelResource, Message: "timeout loading model"}

	in := InterpretError(err, &st)
	if in.ErrorKind != classify.KindModelResource {
		t.Errorf("kind = %q, want %q", in.ErrorKind, classify.KindModelResource)
	}
	if !in.IsError {
		t.Error("expected IsError")
	}
	if in.Severity != SeverityError {
		t.Errorf("severity = %v, want error", in.Severity)
	}
}

func TestInterpretError_PlainErrorFallsBackToSubstring(t *testing.T) {
	var st State
	in := InterpretError(errors.New("camera init failed"), &st)

	if in.ErrorKind != classify.KindPermissionHardware {
		t.Errorf("kind = %q, want %q", in.ErrorKind, classify.KindPermissionHardware)
	}
}

func TestInterpretError_EscalatesNonRecoverableAtThree(t *testing.T) {
	var st State
	err := &classify.ScanError{Kind: classify.KindModelResource, Message: "model failed to load"}

	for i := 1; i <= 2; i++ {
		in := InterpretError(err, &st)
		if in.Escalate {
			t.Fatalf("escalated on error %d", i)
		}
	}

	in := InterpretError(err, &st)
	if !in.Escalate {
		t.Error("3rd consecutive non-recoverable error should escalate")
	}
	if st.ErrorStreak != 3 {
		t.Errorf("error streak = %d, want 3", st.ErrorStreak)
	}
}

func TestInterpretError_RecoverableNeverEscalates(t *testing.T) {
	var st State
	err := &classify.ScanError{Kind: classify.KindTimeout, Message: "classification timeout"}

	for i := 0; i < 10; i++ {
		if in := InterpretError(err, &st); in.Escalate {
			t.Fatalf("timeout escalated on error %d", i+1)
		}
	}
}

func TestInterpretError_LabelsPopulated(t *testing.T) {
	for _, kind := range []classify.ErrorKind{
		classify.KindTimeout,
		classify.KindPermissionHardware,
		classify.KindModelResource,
		classify.KindOther,
	} {
		var st State
		in := InterpretError(&classify.ScanError{Kind: kind, Message: "x"}, &st)
		if in.Label == "" {
			t.Errorf("kind %q produced empty label", kind)
		}
	}
}
