package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/ndvoronin/creatorpulse-backend/pkg/ctxutil"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var ctxID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	wrapped := RequestID(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if ctxID == "" {
		t.Fatal("expected request id in context")
	}
	if _, err := uuid.Parse(ctxID); err != nil {
		t.Errorf("generated request id is not a UUID: %v", err)
	}
	if got := rec.Header().Get("X-Request-Id"); got != ctxID {
		t.Errorf("response header = %q, want %q", got, ctxID)
	}
}

func TestRequestID_PropagatesIncoming(t *testing.T) {
	var ctxID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	wrapped := RequestID(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "client-supplied-id")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if ctxID != "client-supplied-id" {
		t.Errorf("context request id = %q, want client-supplied-id", ctxID)
	}
	if got := rec.Header().Get("X-Request-Id"); got != "client-supplied-id" {
		t.Errorf("response header = %q, want client-supplied-id", got)
	}
}
