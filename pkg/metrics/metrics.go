package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|error|invalidated
	)
	TokenLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_cache_lookups_total",
			Help: "Token cache lookups",
		},
		[]string{"result"}, // hit|miss
	)
)

var (
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Number of domain events published to the queue",
		},
		[]string{"event"},
	)
	EventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_failed_total",
			Help: "Number of domain events that failed to publish",
		},
		[]string{"event"},
	)
)

func MustRegister() {
	prometheus.MustRegister(CacheOps, TokenLookups, EventsPublished, EventsFailed)
}
