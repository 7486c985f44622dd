package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	if err := RegisterAnalyzeApi(router.Group("/v1/analyze"), "", ""); err != nil {
		t.Fatalf("RegisterAnalyzeApi should not fail: %s", err)
	}

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestAnalyzePassword(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/v1/analyze/password", `{"password": "MyP@ssw0rd!"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Status: %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal should not fail: %s", err)
	}

	if resp["score"].(float64) != 86 {
		t.Errorf("Score: %v, want 86", resp["score"])
	}
	if resp["verdict"] != "Very Strong" {
		t.Errorf("Verdict: %v, want Very Strong", resp["verdict"])
	}
	if resp["is_common"] != false {
		t.Errorf("is_common: %v, want false", resp["is_common"])
	}
	if _, ok := resp["crack_estimate"]; !ok {
		t.Errorf("Response should carry a crack estimate")
	}
	if _, ok := resp["password"]; ok {
		t.Errorf("Response must never echo the password back")
	}
}

func TestAnalyzeCommonPassword(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/v1/analyze/password", `{"password": "password"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Status: %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal should not fail: %s", err)
	}

	if resp["is_common"] != true {
		t.Errorf("is_common: %v, want true", resp["is_common"])
	}
	if resp["score"].(float64) != 0 {
		t.Errorf("Score: %v, want 0", resp["score"])
	}
	if resp["verdict"] != "Very Weak" {
		t.Errorf("Verdict: %v, want Very Weak", resp["verdict"])
	}
}

func TestAnalyzeEmptyPassword(t *testing.T) {
	router := newTestRouter(t)

	// An empty password is a valid input, unlike a missing field.
	w := postJSON(t, router, "/v1/analyze/password", `{"password": ""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Status: %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal should not fail: %s", err)
	}

	if resp["score"].(float64) != 0 {
		t.Errorf("Score: %v, want 0", resp["score"])
	}
	if _, ok := resp["crack_estimate"]; ok {
		t.Errorf("Empty password should not carry a crack estimate")
	}
}

func TestAnalyzeBadRequest(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing field", `{}`},
		{"wrong type", `{"password": 5}`},
		{"malformed json", `{"password": `},
	}

	for _, c := range cases {
		w := postJSON(t, router, "/v1/analyze/password", c.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want %d", c.name, w.Code, http.StatusBadRequest)
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: Unmarshal should not fail: %s", c.name, err)
		}
		if _, ok := resp["error"]; !ok {
			t.Errorf("%s: response should carry an error message", c.name)
		}
	}
}

func TestAnalyzeRepeatable(t *testing.T) {
	router := newTestRouter(t)

	first := postJSON(t, router, "/v1/analyze/password", `{"password": "Tr0ub4dour&3"}`)
	second := postJSON(t, router, "/v1/analyze/password", `{"password": "Tr0ub4dour&3"}`)

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("Status: %d then %d, want both %d", first.Code, second.Code, http.StatusOK)
	}
	// Scoring is pure, so repeats are byte for byte identical whether
	// they hit the cache or not.
	if first.Body.String() != second.Body.String() {
		t.Errorf("Same password should produce the same response")
	}
}

func TestScorePassword(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/v1/analyze/score", `{"password": "aaaa1234"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Status: %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal should not fail: %s", err)
	}

	if len(resp) != 2 {
		t.Errorf("Score response keys: %d, want 2", len(resp))
	}
	if resp["score"].(float64) != 28 {
		t.Errorf("Score: %v, want 28", resp["score"])
	}
	if resp["verdict"] != "Weak" {
		t.Errorf("Verdict: %v, want Weak", resp["verdict"])
	}
}
