// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import "math"

// Verdict is the qualitative band a score falls into.
type Verdict string

const (
	VerdictVeryWeak   Verdict = "Very Weak"
	VerdictWeak       Verdict = "Weak"
	VerdictModerate   Verdict = "Moderate"
	VerdictStrong     Verdict = "Strong"
	VerdictVeryStrong Verdict = "Very Strong"
)

// Upper bound of each band. Scores are integers in [0, 100] and the
// bands partition the whole range.
const (
	veryWeakBandMax = 19
	weakBandMax     = 39
	moderateBandMax = 59
	strongBandMax   = 79
)

// Score converts measured features and the reference list verdict into
// an integer between 0 and 100. The same inputs always produce the
// same score.
func (p Policy) Score(f Features, isCommon bool) int {
	score := p.lengthCredit(f.Length)
	score += p.classCredit(f)
	score += math.Min(f.EntropyBits*p.EntropyPerBit, p.EntropyMax)

	if isCommon {
		score -= p.CommonPenalty
	}
	if f.HasRepeatRun {
		score -= p.RepeatPenalty
	}
	if f.HasSequentialRun {
		score -= p.SequencePenalty
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return int(math.Round(score))
}

func (p Policy) lengthCredit(length int) float64 {
	if length >= p.FullCreditLength {
		return p.LengthMax
	}

	return p.LengthMax * float64(length) / float64(p.FullCreditLength)
}

func (p Policy) classCredit(f Features) float64 {
	classes := 0
	if f.HasLower {
		classes++
	}
	if f.HasUpper {
		classes++
	}
	if f.HasDigit {
		classes++
	}
	if f.HasSpecial {
		classes++
	}

	return float64(classes) * p.ClassBonus
}

// VerdictForScore maps a score to its band.
func VerdictForScore(score int) Verdict {
	switch {
	case score <= veryWeakBandMax:
		return VerdictVeryWeak
	case score <= weakBandMax:
		return VerdictWeak
	case score <= moderateBandMax:
		return VerdictModerate
	case score <= strongBandMax:
		return VerdictStrong
	default:
		return VerdictVeryStrong
	}
}
