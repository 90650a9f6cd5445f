// Package metrics exposes Prometheus instruments for the sync engine and the
// Ads reporting client.
package metrics

import (
	"time"

	"adpulse/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adpulse"

// Metrics groups every instrument registered by the service.
type Metrics struct {
	syncRuns       *prometheus.CounterVec
	syncRecords    prometheus.Counter
	syncDuration   prometheus.Histogram
	sweepClients   *prometheus.CounterVec
	alertsCreated  *prometheus.CounterVec
	adsRequests    *prometheus.CounterVec
	adsLatency     *prometheus.HistogramVec
	tokenRefreshes *prometheus.CounterVec
	breakerState   *prometheus.GaugeVec
}

// New registers the instruments on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		syncRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_runs_total",
			Help:      "Client sync attempts by outcome",
		}, []string{"status"}),
		syncRecords: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_records_total",
			Help:      "Rows upserted by client syncs",
		}),
		syncDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Duration of a single client sync",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		sweepClients: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_clients_total",
			Help:      "Clients processed by sweeps by outcome",
		}, []string{"status"}),
		alertsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_created_total",
			Help:      "Alerts raised by type",
		}, []string{"type"}),
		adsRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ads_api_requests_total",
			Help:      "Reporting API page requests by operation and outcome",
		}, []string{"operation", "outcome"}),
		adsLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ads_api_request_duration_seconds",
			Help:      "Reporting API page request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		tokenRefreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "oauth_token_refreshes_total",
			Help:      "Access token refreshes by outcome",
		}, []string{"outcome"}),
		breakerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ads_api_breaker_open",
			Help:      "1 while the reporting API circuit breaker is open",
		}, []string{"name"}),
	}
}

// NewDefault registers on the global registry served by promhttp.Handler.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}

// AsSyncMetrics exposes the sync subset to the use case layer.
func AsSyncMetrics(m *Metrics) service.SyncMetrics {
	return m
}

func (m *Metrics) ObserveSync(success bool, records int, elapsed time.Duration) {
	m.syncRuns.WithLabelValues(outcome(success)).Inc()
	m.syncRecords.Add(float64(records))
	m.syncDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveSweep(_, succeeded, failed int) {
	m.sweepClients.WithLabelValues("success").Add(float64(succeeded))
	m.sweepClients.WithLabelValues("failed").Add(float64(failed))
}

func (m *Metrics) IncAlert(alertType string) {
	m.alertsCreated.WithLabelValues(alertType).Inc()
}

// ObserveAdsRequest records one reporting API page request.
func (m *Metrics) ObserveAdsRequest(operation string, err error, elapsed time.Duration) {
	m.adsRequests.WithLabelValues(operation, outcome(err == nil)).Inc()
	m.adsLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveTokenRefresh records one OAuth refresh.
func (m *Metrics) ObserveTokenRefresh(err error) {
	m.tokenRefreshes.WithLabelValues(outcome(err == nil)).Inc()
}

// SetBreakerOpen tracks circuit breaker transitions.
func (m *Metrics) SetBreakerOpen(name string, open bool) {
	v := 0.0
	if open {
		v = 1
	}
	m.breakerState.WithLabelValues(name).Set(v)
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}

	return "failed"
}
