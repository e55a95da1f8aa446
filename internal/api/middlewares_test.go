package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware_APIKeyAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		enabled    bool
		sendKey    string
		wantStatus int
	}{
		{
			name:       "disabled passes everything through",
			enabled:    false,
			sendKey:    "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid key",
			enabled:    true,
			sendKey:    "secret",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing key",
			enabled:    true,
			sendKey:    "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong key",
			enabled:    true,
			sendKey:    "guess",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewMiddleware(tt.enabled, "secret")

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/invoices", nil)
			if tt.sendKey != "" {
				req.Header.Set("X-Api-Key", tt.sendKey)
			}

			rec := httptest.NewRecorder()

			m.APIKeyAuth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestMiddleware_Cors(t *testing.T) {
	t.Parallel()

	m := NewMiddleware(false, "")

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/invoices", nil)
	req.Header.Set("Origin", "https://studio.example")

	rec := httptest.NewRecorder()

	m.Cors(next).ServeHTTP(rec, req)

	assert.False(t, nextCalled, "preflight must stop at the middleware")
	assert.Equal(t, "https://studio.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Api-Key")
}

func TestMiddleware_Log_SetsRequestID(t *testing.T) {
	t.Parallel()

	m := NewMiddleware(false, "")

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	m.Log(next).ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestMiddleware_Log_KeepsIncomingRequestID(t *testing.T) {
	t.Parallel()

	m := NewMiddleware(false, "")

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-Id", "req-7")

	rec := httptest.NewRecorder()

	m.Log(next).ServeHTTP(rec, req)

	assert.Equal(t, "req-7", rec.Header().Get("X-Request-Id"))
}
