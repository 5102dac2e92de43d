package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/models"
	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/store/memory"
	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/token"
)

// Full login-then-browse flow against the real in-memory store.
func TestLoginAndBrowseFlow(t *testing.T) {
	st := memory.NewStore()
	routes := NewHandler(st, st, token.New("flow-secret", 24*time.Hour)).Routes()

	do := func(method, path, auth string, body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewReader(body))
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		resp := httptest.NewRecorder()
		routes.ServeHTTP(resp, req)
		return resp
	}

	loginBody, _ := json.Marshal(map[string]string{"username": "Poovarasan", "password": "secret"})
	login := do(http.MethodPost, "/api/auth/login", "", loginBody)
	if login.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", login.Code)
	}
	var loginPayload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &loginPayload); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	auth := "Bearer " + loginPayload.Token

	detail := do(http.MethodGet, "/api/issues/1234", auth, nil)
	if detail.Code != http.StatusOK {
		t.Fatalf("issue detail: expected 200, got %d", detail.Code)
	}
	var issue models.Issue
	if err := json.Unmarshal(detail.Body.Bytes(), &issue); err != nil {
		t.Fatalf("decode issue: %v", err)
	}
	if issue.Title != "User login authentication error" || issue.Status != models.StatusOpen {
		t.Fatalf("unexpected issue %+v", issue)
	}

	similar := do(http.MethodGet, "/api/issues/1234/similar", auth, nil)
	if similar.Code != http.StatusOK {
		t.Fatalf("similar: expected 200, got %d", similar.Code)
	}
	var suggestions []models.SimilarIssue
	if err := json.Unmarshal(similar.Body.Bytes(), &suggestions); err != nil {
		t.Fatalf("decode similar: %v", err)
	}
	if len(suggestions) == 0 {
		t.Fatal("expected similar issues")
	}
	for _, s := range suggestions[1:] {
		if suggestions[0].SimilarityPercentage < s.SimilarityPercentage {
			t.Fatalf("first suggestion is not the best match: %+v", suggestions[0])
		}
	}

	synthesized := do(http.MethodGet, "/api/issues/5555", auth, nil)
	if synthesized.Code != http.StatusOK {
		t.Fatalf("synthesized issue: expected 200, got %d", synthesized.Code)
	}
	repeat := do(http.MethodGet, "/api/issues/5555", auth, nil)
	if !bytes.Equal(synthesized.Body.Bytes(), repeat.Body.Bytes()) {
		t.Fatal("synthesized issue changed between requests")
	}
	if !strings.Contains(synthesized.Body.String(), "5555") {
		t.Fatal("synthesized issue does not reference its id")
	}

	escalatedSimilar := do(http.MethodGet, "/api/issues/99999/similar", auth, nil)
	if escalatedSimilar.Code != http.StatusNotFound {
		t.Fatalf("escalated similar: expected 404, got %d", escalatedSimilar.Code)
	}
	escalated := do(http.MethodGet, "/api/issues/99999", auth, nil)
	if escalated.Code != http.StatusOK {
		t.Fatalf("escalated issue: expected 200, got %d", escalated.Code)
	}
}
