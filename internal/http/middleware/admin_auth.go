package middleware

import (
	"encoding/json"
	"net/http"
)

// AdminToken gates blog mutation endpoints behind a shared-secret
// bearer token. The whole Authorization header must exactly equal
// "Bearer <secret>"; any mismatch is rejected before the handler (and
// therefore the content store) is reached.
func AdminToken(secret string) func(http.Handler) http.Handler {
	expected := "Bearer " + secret
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" || r.Header.Get("Authorization") != expected {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
