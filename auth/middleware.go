package auth

import (
	"encoding/json"
	"net/http"

	"github.com/postmcp/logger"
)

// Middleware admits requests carrying the shared secret, or a token signed
// with it, as a Bearer credential. Without a configured secret every request
// passes.
func Middleware(secret Secret, log *logger.Logger) func(http.Handler) http.Handler {
	tok := NewT(secret)
	return func(next http.Handler) http.Handler {
		if !secret.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, err := tok.Extract(r.Header.Get("Authorization"))
			if err != nil {
				unauthorized(w)
				return
			}
			if secret.Matches(credential) {
				next.ServeHTTP(w, r)
				return
			}
			if _, err := tok.Verify(credential); err != nil {
				log.Debug("rejected credential", "path", r.URL.Path, "error", err)
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="postmcp"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "error",
		"content": nil,
		"error":   "Unauthorized",
	})
}
