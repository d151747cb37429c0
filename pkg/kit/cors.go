package kit

import (
	"net/http"
	"strings"
)

// CORS emits permissive cross-origin headers on every response and
// short-circuits OPTIONS preflights with an empty 200. The storefront
// API is public read-only data, so a wildcard origin is deliberate.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// MethodNotAllowed answers 405 with an Allow header naming the verbs a
// route supports. Wired through chi's MethodNotAllowed hook.
func MethodNotAllowed(allow ...string) http.HandlerFunc {
	allowed := strings.Join(allow, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allowed)
		WriteError(w, r, http.StatusMethodNotAllowed, "Method "+r.Method+" Not Allowed")
	}
}
