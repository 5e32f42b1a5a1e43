package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookstore",
			Subsystem: "checkout",
			Name:      "checkouts_total",
			Help:      "Total number of direct checkout attempts by result",
		},
		[]string{"result"},
	)

	reconciliationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookstore",
			Subsystem: "reconcile",
			Name:      "reconciliations_total",
			Help:      "Total number of reconciliation invocations by source and outcome",
		},
		[]string{"source", "state"},
	)
)

var (
	paymentEventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookstore",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_processed_total",
			Help:      "Total number of successfully processed payment events",
		},
	)

	paymentEventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookstore",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_failed_total",
			Help:      "Total number of failed payment event processing attempts",
		},
	)

	paymentEventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookstore",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_dlq_total",
			Help:      "Total number of payment events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookstore",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsTotal,
		reconciliationsTotal,

		paymentEventsProcessed,
		paymentEventsFailed,
		paymentEventsDLQ,
		commitErrors,
	)
}
