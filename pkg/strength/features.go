// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"math"
	"unicode"
)

// Runs shorter than this are not flagged as a pattern.
const minPatternRun = 4

// Features holds the measurable characteristics of a single password.
// Every field is derived; none of them allow reconstructing the
// password text.
type Features struct {
	Length     int  `json:"password_length"`
	HasLower   bool `json:"has_lower"`
	HasUpper   bool `json:"has_upper"`
	HasDigit   bool `json:"has_digit"`
	HasSpecial bool `json:"has_special"`
	// HasRepeatRun reports a run of four or more identical consecutive
	// characters, like "aaaa" or "1111".
	HasRepeatRun bool `json:"has_repeated_run"`
	// HasSequentialRun reports four or more consecutive characters
	// whose codes step by exactly one, ascending or descending, like
	// "abcd" or "4321".
	HasSequentialRun bool `json:"has_sequential_run"`
	// EntropyBits is the Shannon entropy of the character distribution
	// multiplied by the password length, rounded to two decimals.
	EntropyBits float64 `json:"entropy_bits"`
}

// ExtractFeatures measures a password. Any string is valid input; the
// empty string yields the zero Features value.
func ExtractFeatures(password string) Features {
	var f Features

	runes := []rune(password)
	f.Length = len(runes)
	if f.Length == 0 {
		return f
	}

	counts := make(map[rune]int, f.Length)
	repeat := 1
	seq := 1
	seqStep := 0

	for i, r := range runes {
		switch {
		case unicode.IsLower(r):
			f.HasLower = true
		case unicode.IsUpper(r):
			f.HasUpper = true
		case unicode.IsDigit(r):
			f.HasDigit = true
		case !unicode.IsLetter(r):
			// Anything that is not alphanumeric counts as special.
			f.HasSpecial = true
		}

		counts[r]++

		if i == 0 {
			continue
		}

		if r == runes[i-1] {
			repeat++
			if repeat >= minPatternRun {
				f.HasRepeatRun = true
			}
		} else {
			repeat = 1
		}

		step := int(r) - int(runes[i-1])
		if step == 1 || step == -1 {
			if step == seqStep {
				seq++
			} else {
				// A direction change starts a new two character run.
				seq = 2
				seqStep = step
			}
			if seq >= minPatternRun {
				f.HasSequentialRun = true
			}
		} else {
			seq = 1
			seqStep = 0
		}
	}

	f.EntropyBits = entropyBits(counts, f.Length)
	return f
}

func entropyBits(counts map[rune]int, length int) float64 {
	n := float64(length)

	var h float64
	for _, count := range counts {
		p := float64(count) / n
		h -= p * math.Log2(p)
	}

	return math.Round(h*n*100) / 100
}
