package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_requests_total",
			Help: "Total number of tracker requests",
		},
		[]string{"method", "path"},
	)

	RequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_requests_in_flight",
			Help: "Number of tracker requests currently being processed",
		},
	)

	RequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracker_request_duration_seconds",
			Help:    "Duration of tracker requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	UsersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_users_registered_total",
			Help: "Total number of users registered",
		},
	)

	ExercisesRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_exercises_recorded_total",
			Help: "Total number of exercise entries recorded",
		},
	)

	LogQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_log_queries_total",
			Help: "Total number of log queries by filter usage",
		},
		[]string{"filtered", "limited"},
	)
)
