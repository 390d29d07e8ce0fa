package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-slots/internal/changer"
)

func TestRecorderCountsEvents(t *testing.T) {
	spins := testutil.ToFloat64(SpinsTotal)
	wins := testutil.ToFloat64(OutcomesTotal.WithLabelValues(ResultWin))
	losses := testutil.ToFloat64(OutcomesTotal.WithLabelValues(ResultLose))
	bells := testutil.ToFloat64(SelectionsTotal.WithLabelValues("bell"))

	r := NewRecorder()
	r.OnEvent(changer.Event{Kind: changer.EventSelect, Target: "bell"})
	r.OnEvent(changer.Event{Kind: changer.EventSpin, Target: "bell"})
	r.OnEvent(changer.Event{Kind: changer.EventAdvance, Symbol: "bar"})
	r.OnEvent(changer.Event{Kind: changer.EventCountdown, Countdown: 4})
	r.OnEvent(changer.Event{Kind: changer.EventSettle, Symbol: "bell", Win: true})
	r.OnEvent(changer.Event{Kind: changer.EventSettle, Symbol: "bar", Win: false})

	assert.Equal(t, spins+1, testutil.ToFloat64(SpinsTotal))
	assert.Equal(t, wins+1, testutil.ToFloat64(OutcomesTotal.WithLabelValues(ResultWin)))
	assert.Equal(t, losses+1, testutil.ToFloat64(OutcomesTotal.WithLabelValues(ResultLose)))
	assert.Equal(t, bells+1, testutil.ToFloat64(SelectionsTotal.WithLabelValues("bell")))
}

func TestSessionGauge(t *testing.T) {
	active := testutil.ToFloat64(SessionsActive)
	total := testutil.ToFloat64(SessionsTotal)

	SessionStarted()
	SessionStarted()
	assert.Equal(t, active+2, testutil.ToFloat64(SessionsActive))
	SessionEnded()
	assert.Equal(t, active+1, testutil.ToFloat64(SessionsActive))
	assert.Equal(t, total+2, testutil.ToFloat64(SessionsTotal))
	SessionEnded()
}

func TestRouter(t *testing.T) {
	ObserveLoaderWait(1500 * time.Millisecond)
	srv := httptest.NewServer(NewRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", string(body))

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), MetricNameLoaderWaitSeconds)
	assert.Contains(t, string(body), MetricNameSessionsActive)

	resp, err = http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
