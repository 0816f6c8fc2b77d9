package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/blogem/boxee-legacy-api/clientctx"
	"github.com/blogem/boxee-legacy-api/metrics"
)

// RequestLogger logs every request handled by a host group and feeds the request metrics
func RequestLogger(logger *zap.Logger, group string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				elapsed := time.Since(start)
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}

				endpoint := RoutePattern(r)
				if endpoint == "" {
					endpoint = "unmatched"
				}
				metrics.ObserveRequest(group, endpoint, status, elapsed)

				client, _ := clientctx.GetClientAddress(r.Context())

				logger.Info("HTTP request",
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("group", group),
					zap.String("method", r.Method),
					zap.String("host", r.Host),
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
					zap.String("client_address", client),
					zap.Int("status", status),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", elapsed),
					zap.String("user_agent", r.UserAgent()),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
