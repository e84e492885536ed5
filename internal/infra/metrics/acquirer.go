package metrics

import (
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		acquirerRequests,
		acquirerLatencyMs,
	)
}

var (
	acquirerRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acquirer_requests_total",
			Help: "Outbound acquiring-bank calls by HTTP status class (2xx/4xx/5xx/error).",
		},
		[]string{"bank", "status"},
	)

	acquirerLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "acquirer_latency_ms",
			Help:    "Acquiring-bank call latency distribution in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000, 10000},
		},
		[]string{"bank"},
	)
)

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// ObserveAcquirerCall records one outbound call. httpStatus 0 means the request
// never produced a response (network error, timeout).
func ObserveAcquirerCall(bank string, httpStatus int, elapsedMs float64) {
	status := "error"
	if httpStatus > 0 {
		status = strconv.Itoa(httpStatus/100) + "xx"
	}
	acquirerRequests.WithLabelValues(norm(bank), status).Inc()
	acquirerLatencyMs.WithLabelValues(norm(bank)).Observe(elapsedMs)
}
