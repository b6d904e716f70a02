package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insightchat_queries_total",
		Help: "Queries submitted to the analytics backend, by outcome.",
	}, []string{"outcome"})

	queriesInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "insightchat_queries_in_flight",
		Help: "Queries awaiting a backend response.",
	})

	queryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "insightchat_query_duration_seconds",
		Help:    "Round-trip time of backend query calls.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
	})

	historyLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insightchat_history_loads_total",
		Help: "Transcript loads, by outcome.",
	}, []string{"outcome"})

	degradedExchangesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "insightchat_history_degraded_exchanges_total",
		Help: "Stored exchanges whose result could not be decoded.",
	})
)
