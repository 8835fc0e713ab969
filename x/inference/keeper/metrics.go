package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the inference module
type Metrics struct {
	RequestsCreated   prometheus.Counter
	RequestsFulfilled prometheus.Counter
	RequestsExpired   prometheus.Counter

	ResponsesAccepted prometheus.Counter
	ProofsRejected    prometheus.Counter

	NodesSlashed   prometheus.Counter
	RewardsClaimed prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers inference metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			RequestsCreated: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "infera",
				Subsystem: "inference",
				Name:      "requests_created_total",
				Help:      "Total inference requests created",
			}),
			RequestsFulfilled: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "infera",
				Subsystem: "inference",
				Name:      "requests_fulfilled_total",
				Help:      "Total inference requests that reached consensus",
			}),
			RequestsExpired: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "infera",
				Subsystem: "inference",
				Name:      "requests_expired_total",
				Help:      "Total inference requests expired without consensus",
			}),
			ResponsesAccepted: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "infera",
				Subsystem: "inference",
				Name:      "responses_accepted_total",
				Help:      "Total responses that passed all gates",
			}),
			ProofsRejected: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "infera",
				Subsystem: "inference",
				Name:      "proofs_rejected_total",
				Help:      "Total responses rejected at proof verification",
			}),
			NodesSlashed: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "infera",
				Subsystem: "inference",
				Name:      "nodes_slashed_total",
				Help:      "Total slash operations applied",
			}),
			RewardsClaimed: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "infera",
				Subsystem: "inference",
				Name:      "rewards_claimed_total",
				Help:      "Total successful reward claims",
			}),
		}
	})
	return metrics
}
