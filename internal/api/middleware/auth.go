package middleware

import (
	"context"
	"net/http"

	"github.com/haarkliniek/HK-AvailabilityService/internal/api/handlers"
)

type sessionIDKey struct{}

// Auth requires an X-Session-ID header on protected routes and stores the
// session id in the request context
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get("X-Session-ID")
		if sessionID == "" {
			handlers.RespondUnauthorized(w, "sessie-id ontbreekt")
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionIDFromContext returns the session id stored by Auth
func SessionIDFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return sessionID
	}
	return ""
}
