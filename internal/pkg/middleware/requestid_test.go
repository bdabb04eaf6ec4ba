package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"catalogo/internal/pkg/logger"
	"catalogo/internal/pkg/middleware"
)

func TestRequestID(t *testing.T) {
	var buf bytes.Buffer
	var seen string
	h := middleware.RequestID(logger.NewWithWriter("info", &buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/produto/1", nil))

	id := rec.Header().Get(middleware.RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, seen)
	assert.Contains(t, buf.String(), `"status":204`)
	assert.Contains(t, buf.String(), id)
}

func TestRequestID_ReusesClientValue(t *testing.T) {
	h := middleware.RequestID(logger.Nop())(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
}
