package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one is outermost:
// Chain(a, b)(h) is a(b(h)). Nil entries are skipped, which lets callers
// list optional layers such as the rate limiter inline.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				final = mws[i](final)
			}
		}
		return final
	}
}

// When returns mw if enabled is true and nil otherwise.
func When(enabled bool, mw func() Middleware) Middleware {
	if !enabled {
		return nil
	}
	return mw()
}
