package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/naufalh/mapala/internal/auth"
	"github.com/naufalh/mapala/internal/store"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionCookie is the name of the session cookie.
const SessionCookie = "session"

// RequireSession validates the session cookie, checks revocation, and adds
// the session claims to the request context. Requests without a valid
// session get a JSON 401.
func RequireSession(secret string, db *sql.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				jsonError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := auth.ValidateSessionToken(secret, cookie.Value)
			if err != nil {
				jsonError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			// A logged-out session is invalid even before its expiry.
			if claims.ID != "" {
				revoked, err := store.IsSessionRevoked(r.Context(), db, claims.ID)
				if err != nil {
					slog.Error("failed to check session revocation", "error", err)
					jsonError(w, http.StatusInternalServerError, "Server error")
					return
				}
				if revoked {
					jsonError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
			}

			ctx := context.WithValue(r.Context(), sessionKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession retrieves the session claims from the context, or nil for
// guest requests.
func GetSession(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(sessionKey).(*auth.Claims)
	return claims
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs HTTP requests with method, path, status, and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", rec.status,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}
