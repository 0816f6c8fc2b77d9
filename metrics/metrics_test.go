package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestObserveLedgerWrite(t *testing.T) {
	okBefore := testutil.ToFloat64(LedgerWrites.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(LedgerWrites.WithLabelValues("error"))

	ObserveLedgerWrite(nil)
	ObserveLedgerWrite(errors.New("disk full"))
	ObserveLedgerWrite(nil)

	assert.Equal(t, okBefore+2, testutil.ToFloat64(LedgerWrites.WithLabelValues("ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(LedgerWrites.WithLabelValues("error")))
}

func TestObserveRequest(t *testing.T) {
	counter := Requests.WithLabelValues("ping", "/", "200")
	before := testutil.ToFloat64(counter)

	ObserveRequest("ping", "/", http.StatusOK, 5*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestServerHandler(t *testing.T) {
	srv := NewServer(":0", zap.NewNop())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	ObserveLedgerWrite(nil)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "boxee_ledger_writes_total")
}
