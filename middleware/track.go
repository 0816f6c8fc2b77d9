package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/blogem/boxee-legacy-api/metrics"
	"github.com/blogem/boxee-legacy-api/services"
)

// TrackRequest records the (client address, route pattern) pair before the handler runs.
// It must be installed as an inline middleware (With/Group) so the route is already matched.
// A failed ledger write is a server fault: the handler is not called.
func TrackRequest(tracker services.TrackingService, trusted TrustedProxies, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !tracker.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			address := ClientAddress(r, trusted)
			endpoint := RoutePattern(r)

			err := tracker.Record(r.Context(), address, endpoint)
			metrics.ObserveLedgerWrite(err)
			if err != nil {
				logger.Error("failed to track request",
					zap.String("client_address", address),
					zap.String("endpoint", endpoint),
					zap.Error(err),
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RoutePattern returns the matched chi pattern, e.g. "/chkupd/dlink.dsm380/{one}/…".
// Unlike chi's RoutePattern it keeps trailing slashes.
func RoutePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return strings.Join(rctx.RoutePatterns, "")
}
