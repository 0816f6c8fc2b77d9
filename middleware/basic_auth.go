package middleware

import (
	"crypto/subtle"
	"net/http"
)

// RequireStatsAuth guards the stats routes with HTTP basic auth.
// With no credentials configured every request is refused.
func RequireStatsAuth(user, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user == "" || password == "" {
				writeText(w, http.StatusUnauthorized, "No")
				return
			}

			givenUser, givenPassword, ok := r.BasicAuth()
			if !ok || givenUser == "" || givenPassword == "" ||
				!equal(givenUser, user) || !equal(givenPassword, password) {
				w.Header().Set("WWW-Authenticate", "Basic")
				writeText(w, http.StatusUnauthorized, "Login")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
