package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

// RequestID propagates an incoming X-Request-Id header, or assigns a fresh
// one, and echoes it on the response so clients can correlate log lines.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
