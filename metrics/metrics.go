// Package metrics holds the Prometheus collectors for the extraction pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Document outcomes.
const (
	OutcomeSuccess    = "success"
	OutcomeNoSections = "no_sections"
	OutcomeFailed     = "failed"
)

var (
	DocumentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cashflow_documents_processed_total",
		Help: "Documents processed, by outcome.",
	}, []string{"outcome"})

	SectionsExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cashflow_sections_extracted_total",
		Help: "Sections extracted, by canonical section key.",
	}, []string{"section"})

	ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cashflow_extraction_duration_seconds",
		Help:    "Time spent turning one document into a record.",
		Buckets: prometheus.DefBuckets,
	})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
