package upstream

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var upstreamDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "bands_upstream_request_duration_seconds",
		Help:    "Длительность запросов к ISEP Bands API.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

func observe(method, route, status string, d time.Duration) {
	upstreamDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
