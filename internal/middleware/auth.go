package middleware

import (
	"crypto/subtle"
	"net/http"
)

// APIKeyMiddleware guards a route group with a static X-API-Key check.
// With no configured keys the group is open, which is the default for
// local runs.
func APIKeyMiddleware(keys []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(keys) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get("X-API-Key")
			if apiKey == "" {
				http.Error(w, "Unauthorized. Missing API Key", http.StatusUnauthorized)
				return
			}

			for _, key := range keys {
				if subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
					next.ServeHTTP(w, r)
					return
				}
			}

			http.Error(w, "Unauthorized. Invalid API Key", http.StatusUnauthorized)
		})
	}
}
