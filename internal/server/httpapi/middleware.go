package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/arijitp/notekeeper/internal/shared"
)

type ctxKey string

const accountIDKey ctxKey = "accountID"

// accountIDFromContext returns the account id placed by requireAuth.
func accountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	return id, ok
}

// requireAuth extracts the bearer credential from the Authorization header
// (with an optional "Bearer " prefix), verifies it, and re-resolves the
// account. Absent and invalid credentials are indistinguishable to the
// client: every failure is a 401.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			respondWithMessage(w, http.StatusUnauthorized, "Authentication failed")
			return
		}

		account, err := s.auth.ResolveToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, shared.ErrTokenExpired), errors.Is(err, shared.ErrInvalidToken):
				respondWithMessage(w, http.StatusUnauthorized, "Invalid token or expired token")
			case errors.Is(err, shared.ErrNotFound):
				respondWithMessage(w, http.StatusUnauthorized, "User not found")
			default:
				s.logger.Error(r.Context(), err.Error())
				respondWithMessage(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, account.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// logRequests emits one structured log line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
		)
	})
}
