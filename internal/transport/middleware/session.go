package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/vntravel-backend/pkg/ctxutil"
)

// SessionIDHeader identifies a client session (one browser tab) for
// last-query-wins search.
const SessionIDHeader = "X-Session-ID"

const maxSessionIDLength = 128

// Session stores the client session id in the context. Missing or
// oversized ids leave the context untouched.
func Session() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(SessionIDHeader))
			if id == "" || len(id) > maxSessionIDLength {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithSessionID(r.Context(), id)))
		})
	}
}
