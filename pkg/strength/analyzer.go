// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package strength scores passwords. The analysis is local and pure:
// nothing is stored, logged, or sent anywhere, and the returned record
// carries only derived metrics, never the password itself.
package strength

import (
	"fmt"

	"github.com/alvinbaena/pwd-strength/pkg/wordlist"
)

// Result is the full analysis record for one password.
type Result struct {
	Features
	IsCommon    bool     `json:"is_common"`
	Score       int      `json:"score"`
	Verdict     Verdict  `json:"verdict"`
	Suggestions []string `json:"suggestions"`
}

// Analyzer applies a scoring policy and a reference list to passwords.
// Safe for concurrent use; both are read-only after construction.
type Analyzer struct {
	words  *wordlist.Set
	policy Policy
}

// NewAnalyzer builds an analyzer with the given reference list and
// weights. A nil list selects the bundled one. Fails when the policy
// breaks the scoring guarantees.
func NewAnalyzer(words *wordlist.Set, policy Policy) (*Analyzer, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring policy: %w", err)
	}

	if words == nil {
		words = wordlist.Default()
	}

	return &Analyzer{words: words, policy: policy}, nil
}

// NewAnalyzerFromFiles builds an analyzer from a reference list file
// and a policy YAML file. Either path may be empty to use the bundled
// list or the default weights.
func NewAnalyzerFromFiles(wordlistFile string, policyFile string) (*Analyzer, error) {
	words := wordlist.Default()
	if wordlistFile != "" {
		var err error
		if words, err = wordlist.FromFile(wordlistFile); err != nil {
			return nil, fmt.Errorf("error loading reference list: %w", err)
		}
	}

	policy := DefaultPolicy()
	if policyFile != "" {
		var err error
		if policy, err = LoadPolicy(policyFile); err != nil {
			return nil, err
		}
	}

	return NewAnalyzer(words, policy)
}

// Analyze measures, classifies, scores, and explains a single
// password. Any string is valid input, including the empty one; two
// calls with the same password always return the same Result.
func (a *Analyzer) Analyze(password string) Result {
	features := ExtractFeatures(password)
	isCommon := a.words.Contains(password)
	score := a.policy.Score(features, isCommon)

	return Result{
		Features:    features,
		IsCommon:    isCommon,
		Score:       score,
		Verdict:     VerdictForScore(score),
		Suggestions: a.policy.suggest(features, isCommon, score),
	}
}

// Analyze scores a password with the bundled reference list and the
// default weights.
func Analyze(password string) Result {
	a := Analyzer{words: wordlist.Default(), policy: DefaultPolicy()}
	return a.Analyze(password)
}
