package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Tool call outcomes
const (
	OutcomeOK              = "ok"
	OutcomeErrorResult     = "error_result"
	OutcomeInvalidArgument = "invalid_argument"
)

// Upstream request outcomes
const (
	UpstreamOK           = "ok"
	UpstreamNetworkError = "network_error"
	UpstreamBadStatus    = "bad_status"
	UpstreamDecodeError  = "decode_error"
)

var (
	ToolCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_mcp_tool_calls_total",
			Help: "Total tool invocations by tool and outcome.",
		},
		[]string{"tool", "outcome"},
	)

	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_mcp_upstream_requests_total",
			Help: "Total forecast provider requests by outcome.",
		},
		[]string{"outcome"},
	)

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_mcp_http_requests_total",
			Help: "Total HTTP requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	UpstreamDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "weather_mcp_upstream_request_duration_seconds",
			Help:    "Forecast provider request latency.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(ToolCalls, UpstreamRequests, UpstreamDuration, HTTPRequests)
}

// ObserveUpstream records one provider request
func ObserveUpstream(outcome string, started time.Time) {
	UpstreamRequests.WithLabelValues(outcome).Inc()
	UpstreamDuration.Observe(time.Since(started).Seconds())
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
