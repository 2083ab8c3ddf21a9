package middleware

import "net/http"

// DefaultMaxBodySize caps request bodies at 1MB.
const DefaultMaxBodySize int64 = 1 << 20

// RequestSize limits the size of incoming request bodies.
//
// It wraps the request body with http.MaxBytesReader to enforce the limit.
// Handlers decoding an oversized body see an error and the connection is
// closed after the response.
func RequestSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
