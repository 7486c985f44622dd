package api

import (
	"github.com/alvinbaena/pwd-strength/pkg/strength"
)

type analyzeRequest struct {
	// A pointer tells a missing field apart from a legitimately empty
	// password, which is still a valid input for scoring.
	Password *string `json:"password" binding:"required"`
}

type crackEstimate struct {
	CrackTimeSeconds float64 `json:"crack_time_seconds"`
	CrackTimeDisplay string  `json:"crack_time_display"`
	Score            int     `json:"score"`
}

type analyzeResponse struct {
	strength.Result
	CrackEstimate *crackEstimate `json:"crack_estimate,omitempty"`
}

type scoreResponse struct {
	Score   int              `json:"score"`
	Verdict strength.Verdict `json:"verdict"`
}
