package shopping

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "foodgram",
		Subsystem: "shopping",
		Name:      "lists_built_total",
		Help:      "Shopping lists aggregated from carts",
	})

	listLines = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "foodgram",
		Subsystem: "shopping",
		Name:      "list_lines",
		Help:      "Number of lines per aggregated shopping list",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
	})
)
