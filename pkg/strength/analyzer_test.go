package strength

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/alvinbaena/pwd-strength/pkg/wordlist"
)

func TestAnalyzeStrongPassword(t *testing.T) {
	result := Analyze("MyP@ssw0rd!")

	if result.Length != 11 {
		t.Errorf("Length: %d, want 11", result.Length)
	}
	if !result.HasLower || !result.HasUpper || !result.HasDigit || !result.HasSpecial {
		t.Errorf("All four character classes should be present: %+v", result.Features)
	}
	if result.IsCommon {
		t.Errorf("Password should not be on the reference list")
	}
	if result.Verdict != VerdictStrong && result.Verdict != VerdictVeryStrong {
		t.Errorf("Verdict: %s, want Strong or Very Strong", result.Verdict)
	}
}

func TestAnalyzeCommonPassword(t *testing.T) {
	result := Analyze("password")

	if !result.IsCommon {
		t.Errorf("Password should be on the reference list")
	}
	if result.Verdict != VerdictVeryWeak && result.Verdict != VerdictWeak {
		t.Errorf("Verdict: %s, want Very Weak or Weak", result.Verdict)
	}
	if len(result.Suggestions) == 0 || result.Suggestions[0] != "Avoid commonly used passwords." {
		t.Errorf("First suggestion should warn about common passwords: %v", result.Suggestions)
	}
}

func TestAnalyzePatternedPassword(t *testing.T) {
	result := Analyze("aaaa1234")

	if !result.HasRepeatRun {
		t.Errorf("Repeated run should be flagged")
	}
	if !result.HasSequentialRun {
		t.Errorf("Sequential run should be flagged")
	}
	if result.Score != 28 {
		t.Errorf("Score: %d, want 28", result.Score)
	}
}

func TestAnalyzeEmptyPassword(t *testing.T) {
	result := Analyze("")

	if result.Score != 0 {
		t.Errorf("Score: %d, want 0", result.Score)
	}
	if result.Verdict != VerdictVeryWeak {
		t.Errorf("Verdict: %s, want %s", result.Verdict, VerdictVeryWeak)
	}
	if result.EntropyBits != 0 {
		t.Errorf("EntropyBits: %v, want 0", result.EntropyBits)
	}
	if result.IsCommon {
		t.Errorf("Empty password should not be common")
	}
	if len(result.Suggestions) == 0 {
		t.Errorf("Empty password should produce suggestions")
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	first := Analyze("Tr0ub4dour&3")
	second := Analyze("Tr0ub4dour&3")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Analyze should return identical results for identical inputs: %+v != %+v", first, second)
	}
}

func TestAnalyzeScoreBounds(t *testing.T) {
	passwords := []string{
		"",
		"a",
		"password",
		"aaaa1234",
		"MyP@ssw0rd!",
		"correct horse battery staple",
		strings.Repeat("zx!9", 40),
		"ПарольОченьДлинный123!",
	}

	for _, pw := range passwords {
		result := Analyze(pw)
		if result.Score < 0 || result.Score > 100 {
			t.Errorf("Analyze(%q) score out of range: %d", pw, result.Score)
		}
		if VerdictForScore(result.Score) != result.Verdict {
			t.Errorf("Analyze(%q) verdict %s does not match score %d", pw, result.Verdict, result.Score)
		}
	}
}

func TestAnalyzeMonotonicAppend(t *testing.T) {
	// Appending a character of a class the password lacks must never
	// lower the score, as long as the longer password is not itself on
	// the reference list.
	cases := []struct {
		base    string
		appends string
	}{
		{"kitten", "K9#"},
		{"summervacation", "Q7!"},
		{"UPPERONLY", "b2$"},
		{"2468013579", "aZ@"},
		{"trouble maker", "M5"},
	}

	for _, tc := range cases {
		base := Analyze(tc.base)
		for _, r := range tc.appends {
			appended := Analyze(tc.base + string(r))
			if appended.Score < base.Score {
				t.Errorf("Analyze(%q) score %d is below Analyze(%q) score %d",
					tc.base+string(r), appended.Score, tc.base, base.Score)
			}
		}
	}
}

func TestAnalyzeCommonNeverAboveWeak(t *testing.T) {
	// Even a password with every credit maxed out must stay inside the
	// Weak band once it is on the reference list.
	words, err := wordlist.FromReader(strings.NewReader("Str0ng&Common!Pass99\n"))
	if err != nil {
		t.Fatalf("FromReader should not fail: %s", err)
	}

	analyzer, err := NewAnalyzer(words, DefaultPolicy())
	if err != nil {
		t.Fatalf("NewAnalyzer should not fail: %s", err)
	}

	result := analyzer.Analyze("Str0ng&Common!Pass99")
	if !result.IsCommon {
		t.Fatalf("Password should be on the reference list")
	}
	if result.Score > 39 {
		t.Errorf("Reference list password scored %d, should never leave the Weak band", result.Score)
	}
}

func TestAnalyzeCommonCaseInsensitive(t *testing.T) {
	for _, pw := range []string{"password", "PASSWORD", "PaSsWoRd"} {
		if result := Analyze(pw); !result.IsCommon {
			t.Errorf("Analyze(%q) should classify the password as common", pw)
		}
	}
}

func TestNewAnalyzerInvalidPolicy(t *testing.T) {
	policy := DefaultPolicy()
	policy.CommonPenalty = 0

	if _, err := NewAnalyzer(nil, policy); err == nil {
		t.Errorf("NewAnalyzer should reject a policy without common password domination")
	}
}

func TestResultJSONContract(t *testing.T) {
	data, err := json.Marshal(Analyze("abc"))
	if err != nil {
		t.Fatalf("Marshal should not fail: %s", err)
	}

	var fields map[string]interface{}
	if err = json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal should not fail: %s", err)
	}

	for _, key := range []string{
		"password_length", "has_lower", "has_upper", "has_digit", "has_special",
		"has_repeated_run", "has_sequential_run", "is_common", "entropy_bits",
		"score", "verdict", "suggestions",
	} {
		if _, ok := fields[key]; !ok {
			t.Errorf("Marshaled result should have field %q", key)
		}
	}
}
