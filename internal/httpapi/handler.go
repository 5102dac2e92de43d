package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/store"
	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/token"
)

type Handler struct {
	credentials store.CredentialStore
	issues      store.IssueStore
	tokens      *token.Service
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string   `json:"token"`
	ExpiresAt string   `json:"expires_at"`
	User      userInfo `json:"user"`
}

type userInfo struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type errorResponse struct {
	Error  responseError `json:"error"`
	Detail string        `json:"detail"`
}

type responseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewHandler(credentials store.CredentialStore, issues store.IssueStore, tokens *token.Service) *Handler {
	return &Handler{credentials: credentials, issues: issues, tokens: tokens}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", h.handleHealth)
	mux.HandleFunc("/api/auth/login", h.handleLogin)
	mux.HandleFunc("/api/issues/", h.handleIssues)
	mux.HandleFunc("/api/mysql_query_index/", h.handleQueryIndex)
	return AuthMiddleware(h.tokens, mux)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON payload")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "username and password are required")
		return
	}

	user, err := h.credentials.Verify(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	signed, expiresAt, err := h.tokens.Issue(user.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     signed,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		User:      userInfo{Username: user.Username, FullName: user.FullName},
	})
}

func (h *Handler) handleIssues(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if _, ok := requireUser(w, r); !ok {
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/issues/"), "/")
	parts := strings.Split(rest, "/")

	id, ok := parseIssueID(w, parts[0])
	if !ok {
		return
	}

	switch {
	case len(parts) == 1:
		h.getIssue(w, r, id)
	case len(parts) == 2 && parts[1] == "similar":
		h.getSimilar(w, r, id)
	default:
		writeError(w, http.StatusNotFound, "not_found", "unknown endpoint")
	}
}

func (h *Handler) getIssue(w http.ResponseWriter, r *http.Request, id int) {
	issue, err := h.issues.GetIssue(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, issue)
}

func (h *Handler) getSimilar(w http.ResponseWriter, r *http.Request, id int) {
	similar, err := h.issues.GetSimilar(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNoSimilarIssues) {
			writeError(w, http.StatusNotFound, "not_found", "No similar issues found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, similar)
}

func (h *Handler) handleQueryIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if _, ok := requireUser(w, r); !ok {
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/mysql_query_index/"), "/")
	id, ok := parseIssueID(w, rest)
	if !ok {
		return
	}

	index, err := h.issues.GetQueryIndex(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, index)
}

func parseIssueID(w http.ResponseWriter, raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "issue id must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: responseError{Code: code, Message: message}, Detail: message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}
