package metrics

import (
	"strconv"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	StreamVoteBank = "votebank"
	StreamReceipt  = "receipt"
)

type APIMetrics struct {
	RequestsTotal          metrics.Counter
	RequestErrorsTotal     metrics.Counter
	RequestDurationSeconds metrics.Histogram

	// OpenStreams counts the event stream clients, by what they follow.
	OpenStreams metrics.Gauge
}

// ObserveRequest records one finished request; `endpoint` is the route
// template, so every vote bank shares one series.
func (a *APIMetrics) ObserveRequest(endpoint, method string, status int, seconds float64) {
	lvs := []string{"endpoint", endpoint, "method", method, "status", strconv.Itoa(status)}

	a.RequestsTotal.With(lvs...).Add(1)
	if status >= 400 {
		a.RequestErrorsTotal.With(lvs...).Add(1)
	}
	a.RequestDurationSeconds.With(lvs...).Observe(seconds)
}

func (a *APIMetrics) OpenStream(kind string) {
	a.OpenStreams.With("kind", kind).Add(1)
}

func (a *APIMetrics) CloseStream(kind string) {
	a.OpenStreams.With("kind", kind).Add(-1)
}

func PromAPIMetrics() *APIMetrics {
	labels := []string{"endpoint", "method", "status"}

	return &APIMetrics{
		RequestsTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "requests_total",
			Help:      "Total number of api requests.",
		}, labels),
		RequestErrorsTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "request_errors_total",
			Help:      "Total number of api requests answered with a problem.",
		}, labels),
		RequestDurationSeconds: prometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "request_duration_seconds",
			Help:      "Time to answer an api request.",
		}, labels),
		OpenStreams: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "open_streams",
			Help:      "Number of connected vote bank and receipt event streams.",
		}, []string{"kind"}),
	}
}

func NopAPIMetrics() *APIMetrics {
	return &APIMetrics{
		RequestsTotal:          discard.NewCounter(),
		RequestErrorsTotal:     discard.NewCounter(),
		RequestDurationSeconds: discard.NewHistogram(),
		OpenStreams:            discard.NewGauge(),
	}
}
