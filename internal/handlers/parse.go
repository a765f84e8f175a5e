// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling
// mechanisms.
package handlers

import (
	"io"
	"net/http"

	"github.com/repgraph/core/internal/metrics"
	"github.com/repgraph/core/internal/viz"
)

func (a *API) Parse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	defer r.Body.Close()

	graph, err := decodeGraph(body)
	if err != nil {
		http.Error(w, "Invalid graph: "+err.Error(), http.StatusBadRequest)
		return
	}

	metrics.GraphsParsedTotal.Inc()

	payload := viz.Build(graph, viz.AnalysisNone, tokenView(r), a.palette)
	a.writeJSON(w, r, payload)
}
