package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminToken(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		secret     string
		authHeader string
		wantStatus int
	}{
		{
			name:       "valid token",
			secret:     "simpli-admin-2025",
			authHeader: "Bearer simpli-admin-2025",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong token",
			secret:     "simpli-admin-2025",
			authHeader: "Bearer nope",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing header",
			secret:     "simpli-admin-2025",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing Bearer prefix",
			secret:     "simpli-admin-2025",
			authHeader: "simpli-admin-2025",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty secret rejects everything",
			secret:     "",
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AdminToken(tt.secret)(okHandler)

			req := httptest.NewRequest(http.MethodPost, "/blog", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
			}
		})
	}
}
