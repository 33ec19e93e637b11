// Package metrics holds the Prometheus collectors of the explorer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "leochain"

// Result label values
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	screenPolls      *prometheus.CounterVec
	transfers        *prometheus.CounterVec
	latestHeight     prometheus.Gauge
}

// New creates the collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Requests issued to the node RPC and REST surfaces.",
		}, []string{"surface", "endpoint", "result"}),
		screenPolls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "screen_polls_total",
			Help:      "Poll rounds executed by mounted screens.",
		}, []string{"screen", "result"}),
		transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfers_total",
			Help:      "Token transfers by final state.",
		}, []string{"result"}),
		latestHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "latest_block_height",
			Help:      "Latest block height reported by the node.",
		}),
	}
	m.registry.MustRegister(m.upstreamRequests, m.screenPolls, m.transfers, m.latestHeight)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveUpstream counts one upstream call
func (m *Metrics) ObserveUpstream(surface, endpoint string, err error) {
	if m == nil {
		return
	}
	m.upstreamRequests.WithLabelValues(surface, endpoint, result(err)).Inc()
}

// ObservePoll counts one poll round of a screen
func (m *Metrics) ObservePoll(screen string, err error) {
	if m == nil {
		return
	}
	m.screenPolls.WithLabelValues(screen, result(err)).Inc()
}

// ObserveTransfer counts one finished transfer by its final state
func (m *Metrics) ObserveTransfer(state string) {
	if m == nil {
		return
	}
	m.transfers.WithLabelValues(state).Inc()
}

// SetLatestHeight records the latest height seen in a status response
func (m *Metrics) SetLatestHeight(height int64) {
	if m == nil {
		return
	}
	m.latestHeight.Set(float64(height))
}

// UpstreamCounter returns the upstream request counter for one label set
func (m *Metrics) UpstreamCounter(surface, endpoint, result string) prometheus.Counter {
	return m.upstreamRequests.WithLabelValues(surface, endpoint, result)
}

// PollCounter returns the poll counter for one screen and result
func (m *Metrics) PollCounter(screen, result string) prometheus.Counter {
	return m.screenPolls.WithLabelValues(screen, result)
}

// TransferCounter returns the transfer counter for one final state
func (m *Metrics) TransferCounter(state string) prometheus.Counter {
	return m.transfers.WithLabelValues(state)
}

// LatestHeightGauge returns the latest block height gauge
func (m *Metrics) LatestHeightGauge() prometheus.Gauge {
	return m.latestHeight
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
