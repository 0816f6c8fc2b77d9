package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	Requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boxee_requests_total",
			Help: "Total number of handled requests",
		},
		[]string{"group", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "boxee_request_duration_seconds",
			Help:    "Duration of handled requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"group"},
	)

	LedgerWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boxee_ledger_writes_total",
			Help: "Request ledger upserts by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(Requests)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(LedgerWrites)
}

// ObserveRequest records one handled request
func ObserveRequest(group, endpoint string, status int, elapsed time.Duration) {
	Requests.WithLabelValues(group, endpoint, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(group).Observe(elapsed.Seconds())
}

// ObserveLedgerWrite records the outcome of one ledger upsert
func ObserveLedgerWrite(err error) {
	if err != nil {
		LedgerWrites.WithLabelValues("error").Inc()
		return
	}
	LedgerWrites.WithLabelValues("ok").Inc()
}

// Server exposes /metrics and /healthz on a dedicated port
type Server struct {
	server *http.Server
	logger *zap.Logger
}

// NewServer creates the metrics listener for addr
func NewServer(addr string, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return &Server{
		server: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		logger: logger,
	}
}

// Handler returns the metrics mux
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start serves in the background
func (s *Server) Start() {
	go func() {
		s.logger.Info("starting metrics server", zap.String("addr", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server stopped", zap.Error(err))
		}
	}()
}

// Shutdown stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
