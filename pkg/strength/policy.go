// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy holds the scoring weights. All weights are points on the 0 to
// 100 scale; the final score is clamped to that range after adding the
// credits and subtracting the penalties.
type Policy struct {
	// LengthMax is the credit a password earns at FullCreditLength
	// characters. Shorter passwords earn a proportional fraction,
	// longer ones earn no extra.
	LengthMax        float64 `yaml:"length_max"`
	FullCreditLength int     `yaml:"full_credit_length"`
	// ClassBonus is granted once per character class present (lower,
	// upper, digit, special).
	ClassBonus float64 `yaml:"class_bonus"`
	// EntropyPerBit converts entropy bits into points, capped at
	// EntropyMax so entropy alone cannot saturate the score.
	EntropyPerBit   float64 `yaml:"entropy_per_bit"`
	EntropyMax      float64 `yaml:"entropy_max"`
	RepeatPenalty   float64 `yaml:"repeat_penalty"`
	SequencePenalty float64 `yaml:"sequence_penalty"`
	// CommonPenalty applies when the password is on the reference
	// list. It must be large enough that no list member can score
	// above the Weak band; Validate enforces this.
	CommonPenalty float64 `yaml:"common_penalty"`
}

// DefaultPolicy returns the documented default weights.
func DefaultPolicy() Policy {
	return Policy{
		LengthMax:        30,
		FullCreditLength: 12,
		ClassBonus:       10,
		EntropyPerBit:    0.5,
		EntropyMax:       30,
		RepeatPenalty:    10,
		SequencePenalty:  10,
		CommonPenalty:    70,
	}
}

// LoadPolicy reads weights from a YAML file. Fields missing from the
// file keep their default values.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()

	data, err := os.ReadFile(path)
	if err != nil {
		return policy, err
	}

	if err = yaml.Unmarshal(data, &policy); err != nil {
		return policy, fmt.Errorf("error parsing policy file %s: %w", path, err)
	}

	return policy, policy.Validate()
}

// Validate rejects weight combinations that break the scoring
// guarantees.
func (p Policy) Validate() error {
	if p.FullCreditLength < 1 {
		return errors.New("full_credit_length must be at least 1")
	}

	if p.LengthMax < 0 || p.ClassBonus < 0 || p.EntropyPerBit < 0 || p.EntropyMax < 0 ||
		p.RepeatPenalty < 0 || p.SequencePenalty < 0 || p.CommonPenalty < 0 {
		return errors.New("scoring weights must not be negative")
	}

	// A reference list password must never leave the Weak band, even
	// with every credit maxed out.
	if headroom := p.maxAttainable() - p.CommonPenalty; headroom > weakBandMax {
		return fmt.Errorf("common_penalty %.0f is too low: a reference list password could still score %.0f", p.CommonPenalty, headroom)
	}

	// Adding a character of a new class may complete a sequential run
	// ("xyz" plus "{"). The class bonus has to cover the penalty or
	// adding characters could lower the score.
	if p.ClassBonus < p.SequencePenalty {
		return fmt.Errorf("class_bonus %.0f must be at least sequence_penalty %.0f", p.ClassBonus, p.SequencePenalty)
	}

	return nil
}

func (p Policy) maxAttainable() float64 {
	return p.LengthMax + 4*p.ClassBonus + p.EntropyMax
}
