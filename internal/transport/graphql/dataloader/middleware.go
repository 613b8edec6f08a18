package dataloader

import "net/http"

// Middleware attaches a fresh set of loaders to each request's context.
// Loaders must not outlive the request: their caches would otherwise serve
// stale rows across queries.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(repos))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
