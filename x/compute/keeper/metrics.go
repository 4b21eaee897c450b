package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GatewayMetrics holds all Prometheus metrics for the compute gateway
type GatewayMetrics struct {
	ComputationsQueued    *prometheus.CounterVec
	ComputationsDelivered *prometheus.CounterVec
	ComputationsAborted   *prometheus.CounterVec
	PendingComputations   prometheus.Gauge
}

var (
	gatewayMetricsOnce sync.Once
	gatewayMetrics     *GatewayMetrics
)

// NewGatewayMetrics creates and registers gateway metrics (singleton pattern)
func NewGatewayMetrics() *GatewayMetrics {
	gatewayMetricsOnce.Do(func() {
		gatewayMetrics = &GatewayMetrics{
			ComputationsQueued: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "hoot",
					Subsystem: "compute",
					Name:      "computations_queued_total",
					Help:      "Total computations queued for the evaluator cluster",
				},
				[]string{"circuit"},
			),
			ComputationsDelivered: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "hoot",
					Subsystem: "compute",
					Name:      "computations_delivered_total",
					Help:      "Total computation results delivered and consumed",
				},
				[]string{"circuit"},
			),
			ComputationsAborted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "hoot",
					Subsystem: "compute",
					Name:      "computations_aborted_total",
					Help:      "Total computations aborted by the evaluator cluster",
				},
				[]string{"circuit"},
			),
			PendingComputations: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "hoot",
					Subsystem: "compute",
					Name:      "pending_computations",
					Help:      "Current number of pending computations",
				},
			),
		}
	})
	return gatewayMetrics
}
