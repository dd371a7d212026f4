// Package metrics exposes the prometheus instrumentation of the
// ingestion pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Imports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paisaflow_imports_total",
		Help: "Total number of ingestion runs, labelled by outcome.",
	}, []string{"status"})

	RowsImported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paisaflow_import_rows_total",
		Help: "Total number of rows turned into canonical transactions.",
	})

	RowsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paisaflow_import_rows_dropped_total",
		Help: "Total number of rows dropped because their date could not be parsed.",
	})

	ImportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "paisaflow_import_duration_seconds",
		Help:    "Duration of one ingestion run, from upload to storage.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	})
)
