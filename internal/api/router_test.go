package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightpixel/studio-api/internal/entity"
)

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := NewHandler(&serviceStub{
		businessesFunc: func(_ context.Context) ([]entity.Business, error) {
			return nil, nil
		},
	})
	router := NewRouter(h, NewMiddleware(false, ""))

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/invoices", http.StatusMethodNotAllowed},
		{http.MethodDelete, "/api/contracts", http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/businesses", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/businesses", http.StatusOK},
		{http.MethodGet, "/api/health", http.StatusOK},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, tt.want, rec.Code, "%s %s", tt.method, tt.path)
	}
}

func TestRouter_APIKeyGuardsMutations(t *testing.T) {
	t.Parallel()

	h := NewHandler(&serviceStub{
		businessesFunc: func(_ context.Context) ([]entity.Business, error) {
			return nil, nil
		},
	})
	router := NewRouter(h, NewMiddleware(true, "secret"))

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(validInvoiceBody))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/businesses", nil)
	rec = httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "read-only listings stay open")
}
