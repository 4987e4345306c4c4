package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordCall(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())

	m.RecordCall("getReserves", 10*time.Millisecond, nil)
	m.RecordCall("getReserves", 10*time.Millisecond, nil)
	m.RecordCall("getReserves", 10*time.Millisecond, errors.New("boom"))

	require.Equal(t, 2.0, testutil.ToFloat64(m.RPCCalls.WithLabelValues("getReserves", StatusOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RPCCalls.WithLabelValues("getReserves", StatusError)))
}

func TestRecordSwallowed(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())
	m.RecordSwallowed("getUserLoans")

	require.Equal(t, 1.0, testutil.ToFloat64(m.RPCSwallowed.WithLabelValues("getUserLoans")))
}

func TestNilMetrics(t *testing.T) {
	t.Parallel()

	var m *Metrics
	require.NotPanics(t, func() {
		m.RecordCall("token0", time.Second, nil)
		m.RecordSwallowed("getUserLoans")
	})
}

func TestHandler(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())
	m.RecordCall("totalSupply", time.Millisecond, nil)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `twindex_rpc_calls_total{method="totalSupply",status="ok"} 1`)
}
