package isoduration

import (
	"testing"
)

func TestSeconds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"minutes and seconds", "PT1M30S", 90},
		{"seconds only", "PT45S", 45},
		{"hours only", "PT2H", 7200},
		{"all components", "PT1H2M3S", 3723},
		{"hours and seconds", "PT1H5S", 3605},
		{"bare PT", "PT", 0},
		{"large minutes", "PT90M", 5400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Seconds(tt.input)
			if !ok {
				t.Fatalf("Seconds(%q) reported not-ok, want ok", tt.input)
			}
			if got != tt.want {
				t.Errorf("Seconds(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSeconds_Malformed(t *testing.T) {
	inputs := []string{"", "P1D", "1M30S", "PT1X", "PT1.5M", "garbage", "PT1M30"}

	for _, input := range inputs {
		if _, ok := Seconds(input); ok {
			t.Errorf("Seconds(%q) reported ok, want not-ok", input)
		}
	}
}

// "PT1M30" has trailing digits with no unit — the whole string must be
// rejected rather than partially parsed.
func TestSeconds_NoPartialParse(t *testing.T) {
	if _, ok := Seconds("PT1M30"); ok {
		t.Error("trailing unitless digits should not parse")
	}
}

func TestIsShort(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"PT45S", true},
		{"PT59S", true},
		{"PT1M", false},
		{"PT1M30S", false},
		{"PT2H", false},
		{"PT", true}, // zero seconds counts as a short
	}

	for _, tt := range tests {
		if got := IsShort(tt.input); got != tt.want {
			t.Errorf("IsShort(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsShort_UnparseableIsNeverShort(t *testing.T) {
	// Malformed durations must be treated as long-form so a bad encoding
	// can never silently drop a video from an import.
	for _, input := range []string{"", "P1D", "not-a-duration"} {
		if IsShort(input) {
			t.Errorf("IsShort(%q) = true, want false for unparseable input", input)
		}
	}
}
