package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/Lixing-Zhang/food-dashboard/internal/config"
)

// APIKeyHeader carries the key of JSON API callers
const APIKeyHeader = "api_key"

// basicRealm is announced on 401 so browsers prompt for credentials
const basicRealm = `Basic realm="food-dashboard"`

// APIKeyAuth middleware validates the API key of state-changing requests.
// Reads (GET, HEAD, OPTIONS) pass through. The key is read from the
// api_key header or, for browser forms, the password of HTTP Basic auth.
func APIKeyAuth(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get(APIKeyHeader)
			if apiKey == "" {
				if _, password, ok := r.BasicAuth(); ok {
					apiKey = password
				}
			}
			if apiKey == "" {
				w.Header().Set("WWW-Authenticate", basicRealm)
				http.Error(w, "Unauthorized: API key required", http.StatusUnauthorized)
				return
			}

			if !validKey(cfg.APIKeys, apiKey) {
				http.Error(w, "Forbidden: Invalid API key", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func validKey(keys []string, key string) bool {
	valid := false
	for _, k := range keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			valid = true
		}
	}
	return valid
}
