package waste

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   Category
		wantOK bool
	}{
		{"Recyclable", Recyclable, true},
		{"recyclable", Recyclable, true},
		{"COMPOSTABLE", Compostable, true},
		{"trash", Trash, true},
		{"  unknown  ", Unknown, true},
		{"garbage", Unknown, false},
		{"", Unknown, false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"recyclable", "Recyclable"},
		{"TRASH", "Trash"},
		{"cOmPoStAbLe", "Compostable"},
		{"", ""},
		{"x", "X"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSymbolAndBlurbNonEmpty(t *testing.T) {
	for _, c := range All() {
		if c.Symbol() == "" {
			t.Errorf("%q has empty symbol", c)
		}
		if c.Blurb() == "" {
			t.Errorf("%q has empty blurb", c)
		}
	}
}
