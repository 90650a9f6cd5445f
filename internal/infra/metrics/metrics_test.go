package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveSync(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSync(true, 12, 2*time.Second)
	m.ObserveSync(false, 3, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.syncRuns.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.syncRuns.WithLabelValues("failed")))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.syncRecords))
}

func TestMetrics_ObserveSweepAndAlerts(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSweep(5, 4, 1)
	m.IncAlert("BUDGET_80")
	m.IncAlert("BUDGET_80")

	assert.Equal(t, 4.0, testutil.ToFloat64(m.sweepClients.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sweepClients.WithLabelValues("failed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.alertsCreated.WithLabelValues("BUDGET_80")))
}

func TestMetrics_AdsInstruments(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveAdsRequest("campaigns", nil, 100*time.Millisecond)
	m.ObserveAdsRequest("campaigns", errors.New("boom"), 100*time.Millisecond)
	m.ObserveTokenRefresh(nil)
	m.SetBreakerOpen("google-ads", true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.adsRequests.WithLabelValues("campaigns", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tokenRefreshes.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.breakerState.WithLabelValues("google-ads")))

	m.SetBreakerOpen("google-ads", false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.breakerState.WithLabelValues("google-ads")))
}

func TestMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
