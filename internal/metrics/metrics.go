// Package metrics exposes the Prometheus instruments for the API server.
// promauto registers everything against the default registry, so importing
// the package is all the setup required.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts processed requests by method, path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repgraph_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures server response time per endpoint.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "repgraph_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	// GraphsParsedTotal counts graphs successfully ingested.
	GraphsParsedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "repgraph_graphs_parsed_total",
			Help: "Total number of graphs successfully parsed and built",
		},
	)

	// AnalysesTotal counts analysis runs by type.
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repgraph_analyses_total",
			Help: "Total number of graph analyses executed",
		},
		[]string{"analysis"},
	)
)
