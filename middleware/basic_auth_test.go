package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("secret"))
	})
}

func TestRequireStatsAuthUnconfigured(t *testing.T) {
	for _, creds := range [][2]string{{"", ""}, {"admin", ""}, {"", "pass"}} {
		handler := RequireStatsAuth(creds[0], creds[1])(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/stats-all", nil)
		req.SetBasicAuth("admin", "pass")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "No", rec.Body.String())
		assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
	}
}

func TestRequireStatsAuthChallenges(t *testing.T) {
	handler := RequireStatsAuth("admin", "pass")(okHandler())

	cases := map[string]func(*http.Request){
		"missing":        func(*http.Request) {},
		"wrong user":     func(r *http.Request) { r.SetBasicAuth("root", "pass") },
		"wrong password": func(r *http.Request) { r.SetBasicAuth("admin", "nope") },
		"empty password": func(r *http.Request) { r.SetBasicAuth("admin", "") },
	}

	for name, prepare := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/stats-all", nil)
			prepare(req)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Login", rec.Body.String())
			assert.Equal(t, "Basic", rec.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestRequireStatsAuthAccepts(t *testing.T) {
	handler := RequireStatsAuth("admin", "pass")(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/stats-all", nil)
	req.SetBasicAuth("admin", "pass")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "secret", rec.Body.String())
}
