package strength

import (
	"testing"
)

func TestVerdictForScore(t *testing.T) {
	cases := []struct {
		score int
		want  Verdict
	}{
		{0, VerdictVeryWeak},
		{19, VerdictVeryWeak},
		{20, VerdictWeak},
		{39, VerdictWeak},
		{40, VerdictModerate},
		{59, VerdictModerate},
		{60, VerdictStrong},
		{79, VerdictStrong},
		{80, VerdictVeryStrong},
		{100, VerdictVeryStrong},
	}

	for _, tc := range cases {
		if got := VerdictForScore(tc.score); got != tc.want {
			t.Errorf("VerdictForScore(%d): %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestPolicyScore(t *testing.T) {
	policy := DefaultPolicy()

	cases := []struct {
		password string
		isCommon bool
		want     int
	}{
		{"", false, 0},
		// 20 length + 10 lower + 11 entropy - 70 common, clamped at 0.
		{"password", true, 0},
		// 20 length + 20 classes + 8 entropy - 10 repeat - 10 sequence.
		{"aaaa1234", false, 28},
	}

	for _, tc := range cases {
		got := policy.Score(ExtractFeatures(tc.password), tc.isCommon)
		if got != tc.want {
			t.Errorf("Score(%q, common=%t): %d, want %d", tc.password, tc.isCommon, got, tc.want)
		}
	}
}

func TestPolicyScoreClamped(t *testing.T) {
	// Deliberately overweight policy to exercise the upper clamp.
	policy := Policy{LengthMax: 80, FullCreditLength: 4, ClassBonus: 20, EntropyPerBit: 1, EntropyMax: 60}

	if got := policy.Score(ExtractFeatures("aB3$aB3$"), false); got != 100 {
		t.Errorf("Score should clamp to 100, got %d", got)
	}
}

func TestPolicyLengthCredit(t *testing.T) {
	policy := DefaultPolicy()

	cases := []struct {
		length int
		want   float64
	}{
		{0, 0},
		{6, 15},
		{12, 30},
		// No extra credit past the full credit length.
		{20, 30},
	}

	for _, tc := range cases {
		if got := policy.lengthCredit(tc.length); got != tc.want {
			t.Errorf("lengthCredit(%d): %v, want %v", tc.length, got, tc.want)
		}
	}
}
