package coverage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// planTotal counts Plan calls by outcome.
	// Labels: "complete", "partial", "empty", "error".
	planTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flyover_coverage_plans_total",
		Help: "Total coverage plans by outcome",
	}, []string{"result"})

	planDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "flyover_coverage_plan_duration_seconds",
		Help:    "Coverage plan duration",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
	})

	routeWaypoints = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "flyover_coverage_route_waypoints",
		Help:    "Number of waypoints in planned routes",
		Buckets: prometheus.ExponentialBuckets(1, 2, 14),
	})
)
