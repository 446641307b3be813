package middleware

import "net/http"

// NoStore marks every response non-cacheable. Survey progress and
// recommendations are per-user and recomputed per request; stale cached
// copies would be wrong for the next visitor on a shared kiosk browser.
func NoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}
