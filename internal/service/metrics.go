package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var reconcileSkippedLines = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bookstore",
	Subsystem: "reconcile",
	Name:      "skipped_lines_total",
	Help:      "Paid provider line items skipped because stock could not be reserved.",
})
