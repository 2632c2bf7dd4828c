/**
 * @description
 * This file contains the internal API key middleware for the
 * reconciliation-service. The service is only ever called by the operations
 * console backend, so service-to-service calls are authenticated with a
 * shared key in the X-Internal-Api-Key header rather than end-user tokens.
 *
 * @dependencies
 * - crypto/subtle, log, net/http: Standard Go libraries.
 */

package api

import (
	"crypto/subtle"
	"log"
	"net/http"
)

const internalAPIKeyHeader = "X-Internal-Api-Key"

// InternalAPIKeyMiddleware rejects requests that do not carry the shared
// internal key. An empty configured key disables the guard, which is only
// acceptable for local development.
func InternalAPIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(internalAPIKeyHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				log.Printf("level=warn component=api msg=\"internal api key rejected\" path=%s", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
