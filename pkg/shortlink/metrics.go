package shortlink

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	linksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "foodgram",
		Subsystem: "shortlink",
		Name:      "created_total",
		Help:      "Short links issued for recipes",
	})

	// linkRetries counts allocation rounds discarded because the token was
	// taken or another request linked the recipe first.
	// Labels: reason (token_taken, duplicate_key)
	linkRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodgram",
		Subsystem: "shortlink",
		Name:      "retries_total",
		Help:      "Short link allocation retries by reason",
	}, []string{"reason"})

	linksResolved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "foodgram",
		Subsystem: "shortlink",
		Name:      "resolved_total",
		Help:      "Short links resolved to a recipe",
	})
)
