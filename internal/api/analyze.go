// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"crypto/sha1"
	"encoding/hex"
	"net/http"

	"github.com/alvinbaena/pwd-strength/pkg/strength"
	"github.com/dgraph-io/ristretto"
	"github.com/gin-gonic/gin"
	"github.com/nbutton23/zxcvbn-go"
)

type analyzeApi struct {
	analyzer *strength.Analyzer
	cache    *ristretto.Cache
}

// cacheKey derives the lookup key from the password. The cache only
// ever sees this digest and the derived metrics stored under it, never
// the password itself.
func cacheKey(password string) string {
	h := sha1.New()
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil))
}

func (a *analyzeApi) analyzePassword(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := cacheKey(*req.Password)
	if cached, ok := a.cache.Get(key); ok {
		c.JSON(http.StatusOK, cached.(analyzeResponse))
		return
	}

	resp := analyzeResponse{Result: a.analyzer.Analyze(*req.Password)}
	if *req.Password != "" {
		// zxcvbn has no meaningful estimate for an empty password.
		entropy := zxcvbn.PasswordStrength(*req.Password, nil)
		resp.CrackEstimate = &crackEstimate{
			CrackTimeSeconds: entropy.CrackTime,
			CrackTimeDisplay: entropy.CrackTimeDisplay,
			Score:            entropy.Score,
		}
	}

	a.cache.Set(key, resp, 1)
	c.JSON(http.StatusOK, resp)
}

func (a *analyzeApi) scorePassword(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := a.analyzer.Analyze(*req.Password)
	c.JSON(http.StatusOK, scoreResponse{Score: result.Score, Verdict: result.Verdict})
}

func RegisterAnalyzeApi(group *gin.RouterGroup, wordlistFile string, policyFile string) error {
	analyzer, err := strength.NewAnalyzerFromFiles(wordlistFile, policyFile)
	if err != nil {
		return err
	}

	// Scoring is pure, so the same input always maps to the same
	// response. Caching skips the zxcvbn estimate on repeats.
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 100000,
		MaxCost:     10000,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	a := &analyzeApi{analyzer: analyzer, cache: cache}

	group.POST("/password", a.analyzePassword)
	group.POST("/score", a.scorePassword)

	return nil
}
