package middleware

import (
	"net/http"
)

// MaxBodySize is the default maximum request body size (4 MB).
// Observation payloads are small; anything larger is a client bug.
const MaxBodySize = 4 << 20

// MaxBody limits the request body size. If maxSize is 0, MaxBodySize
// applies.
func MaxBody(maxSize int64) Middleware {
	if maxSize <= 0 {
		maxSize = MaxBodySize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
				r.Body = http.MaxBytesReader(w, r.Body, maxSize)
			}
			next.ServeHTTP(w, r)
		})
	}
}
