package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anonchat_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "anonchat_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	// Business metrics
	RoomsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anonchat_rooms_created_total",
			Help: "Total rooms created",
		},
		[]string{"source"}, // "api" or "bot"
	)

	RoomsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "anonchat_rooms_deleted_total",
			Help: "Total rooms deleted by their creators",
		},
	)

	RoomsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "anonchat_rooms_expired_total",
			Help: "Total rooms evicted by the expiry sweeper",
		},
	)

	RoomsLive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "anonchat_rooms_live",
			Help: "Rooms currently in the store",
		},
	)

	MessagesPosted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anonchat_messages_posted_total",
			Help: "Total messages posted",
		},
		[]string{"source"}, // "api", "bot" or "auto"
	)

	AutoRepliesScheduled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "anonchat_auto_replies_scheduled_total",
			Help: "Total auto-replies scheduled",
		},
	)

	AutoRepliesFired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "anonchat_auto_replies_fired_total",
			Help: "Total auto-replies that landed in a live room",
		},
	)

	// Sweeper metrics
	SweepRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "anonchat_sweep_runs_total",
			Help: "Total expiry sweep passes",
		},
	)

	SweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "anonchat_sweep_duration_seconds",
			Help:    "Expiry sweep pass duration",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05},
		},
	)

	// Rate limit metrics
	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anonchat_rate_limit_hits_total",
			Help: "Total rate limit hits",
		},
		[]string{"endpoint"},
	)

	BlockedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anonchat_blocked_requests_total",
			Help: "Total blocked requests",
		},
		[]string{"reason"},
	)
)
