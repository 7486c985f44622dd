package strength

import "fmt"

// suggest lists one improvement per unmet criterion, most impactful
// first: reference list membership, missing character classes, length,
// then patterns. The refinement tip trails whenever the verdict is
// below Very Strong.
func (p Policy) suggest(f Features, isCommon bool, score int) []string {
	// Non-nil so an empty list renders as [] and not null.
	suggestions := make([]string, 0, 8)

	if isCommon {
		suggestions = append(suggestions, "Avoid commonly used passwords.")
	}
	if !f.HasLower {
		suggestions = append(suggestions, "Add lowercase letters.")
	}
	if !f.HasUpper {
		suggestions = append(suggestions, "Add uppercase letters.")
	}
	if !f.HasDigit {
		suggestions = append(suggestions, "Add digits.")
	}
	if !f.HasSpecial {
		suggestions = append(suggestions, "Add special characters (e.g., '!', '@', '#').")
	}
	if f.Length < p.FullCreditLength {
		suggestions = append(suggestions, fmt.Sprintf("Increase password length (minimum %d characters recommended).", p.FullCreditLength))
	}
	if f.HasRepeatRun {
		suggestions = append(suggestions, "Avoid repeated characters (e.g., 'aaaa').")
	}
	if f.HasSequentialRun {
		suggestions = append(suggestions, "Avoid sequential patterns (e.g., '1234', 'abcd').")
	}

	if VerdictForScore(score) != VerdictVeryStrong {
		suggestions = append(suggestions, "Consider using a long passphrase or a password manager to generate strong passwords.")
	}

	return suggestions
}
