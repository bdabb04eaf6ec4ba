package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogo/internal/pkg/middleware"
	"catalogo/internal/pkg/token"
)

func TestAuthMiddleware(t *testing.T) {
	key, err := token.GenerateKeyPair(1024)
	require.NoError(t, err)
	svc := token.NewService(key, nil, time.Hour)

	var claims middleware.Claims
	h := middleware.NewAuthMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ = middleware.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	valid, err := svc.GenerateToken("frontend", "writer")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"sem header", "", http.StatusUnauthorized},
		{"esquema errado", "Basic abc", http.StatusUnauthorized},
		{"token inválido", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"token válido", "Bearer " + valid, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/produto", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
			}
		})
	}

	assert.Equal(t, middleware.Claims{Subject: "frontend", Role: "writer"}, claims)
}
