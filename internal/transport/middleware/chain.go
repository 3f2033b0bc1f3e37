package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain folds middleware into one. The first argument ends up outermost:
// Chain(Recovery, Auth)(mux) runs Recovery before Auth before the mux,
// which is the order the server wiring reads in.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
