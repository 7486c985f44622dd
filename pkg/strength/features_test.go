package strength

import (
	"testing"
)

func TestExtractFeaturesClasses(t *testing.T) {
	cases := []struct {
		password string
		lower    bool
		upper    bool
		digit    bool
		special  bool
	}{
		{"", false, false, false, false},
		{"abc", true, false, false, false},
		{"ABC", false, true, false, false},
		{"240", false, false, true, false},
		{"!?", false, false, false, true},
		{"aB3$", true, true, true, true},
		// A space is not alphanumeric, so it counts as special.
		{"with space", true, false, false, true},
		// Uncased letters are still letters, not special characters.
		{"日本語", false, false, false, false},
	}

	for _, tc := range cases {
		f := ExtractFeatures(tc.password)
		if f.HasLower != tc.lower || f.HasUpper != tc.upper || f.HasDigit != tc.digit || f.HasSpecial != tc.special {
			t.Errorf("ExtractFeatures(%q): lower=%t upper=%t digit=%t special=%t, want lower=%t upper=%t digit=%t special=%t",
				tc.password, f.HasLower, f.HasUpper, f.HasDigit, f.HasSpecial, tc.lower, tc.upper, tc.digit, tc.special)
		}
	}
}

func TestExtractFeaturesLength(t *testing.T) {
	cases := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abc", 3},
		{"aB3$aB3$", 8},
		// Length counts characters, not bytes.
		{"日本語", 3},
	}

	for _, tc := range cases {
		if f := ExtractFeatures(tc.password); f.Length != tc.want {
			t.Errorf("ExtractFeatures(%q) length: %d, want %d", tc.password, f.Length, tc.want)
		}
	}
}

func TestExtractFeaturesPatterns(t *testing.T) {
	cases := []struct {
		password string
		repeat   bool
		sequence bool
	}{
		// Three in a row is below the run threshold.
		{"aaa", false, false},
		{"aaaa", true, false},
		{"xaaaax", true, false},
		{"abc", false, false},
		{"abcd", false, true},
		{"dcba", false, true},
		{"4321", false, true},
		{"abce", false, false},
		// A direction change restarts the run.
		{"abba", false, false},
		// Steps larger than one are not sequential.
		{"aceg", false, false},
		{"aaaa1234", true, true},
		// Sequences may cross class boundaries in the character codes.
		{"xyz{", false, true},
	}

	for _, tc := range cases {
		f := ExtractFeatures(tc.password)
		if f.HasRepeatRun != tc.repeat {
			t.Errorf("ExtractFeatures(%q) repeat run: %t, want %t", tc.password, f.HasRepeatRun, tc.repeat)
		}
		if f.HasSequentialRun != tc.sequence {
			t.Errorf("ExtractFeatures(%q) sequential run: %t, want %t", tc.password, f.HasSequentialRun, tc.sequence)
		}
	}
}

func TestExtractFeaturesEntropy(t *testing.T) {
	cases := []struct {
		password string
		want     float64
	}{
		{"", 0},
		// A single repeated character carries no entropy.
		{"aaaa", 0},
		{"abab", 4},
		{"password", 22},
		// Rounded to two decimals.
		{"aab", 2.75},
	}

	for _, tc := range cases {
		if f := ExtractFeatures(tc.password); f.EntropyBits != tc.want {
			t.Errorf("ExtractFeatures(%q) entropy: %v, want %v", tc.password, f.EntropyBits, tc.want)
		}
	}
}
