package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/token"
)

type authContextKey struct{}

// AuthMiddleware resolves the bearer token on protected routes before any
// handler runs. The raw token is never logged.
func AuthMiddleware(tokens *token.Service, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicEndpoint(r) {
			next.ServeHTTP(w, r)
			return
		}
		raw := bearerToken(r.Header.Get("Authorization"))
		if raw == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "missing token")
			return
		}
		username, err := tokens.Verify(raw)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", "invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), authContextKey{}, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func usernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(authContextKey{}).(string)
	return username, ok
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := usernameFromContext(r.Context())
	if !ok || username == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing token")
		return "", false
	}
	return username, true
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.Fields(header)
	if len(parts) != 2 {
		return ""
	}
	if strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

func isPublicEndpoint(r *http.Request) bool {
	switch r.URL.Path {
	case "/api/health":
		return true
	case "/api/auth/login":
		return r.Method == http.MethodPost
	default:
		return r.Method == http.MethodOptions
	}
}
