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

func (a *API) Subgraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	nodeID := r.URL.Query().Get("node")
	if nodeID == "" {
		http.Error(w, "Missing node parameter", http.StatusBadRequest)
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

	root, ok := graph.FindNode(nodeID)
	if !ok {
		http.Error(w, "Unknown node: "+nodeID, http.StatusNotFound)
		return
	}

	graph.MarkSubgraph(root)
	metrics.AnalysesTotal.WithLabelValues("subgraph").Inc()

	payload := viz.Build(graph, viz.AnalysisSubgraph, tokenView(r), a.palette)
	a.writeJSON(w, r, payload)
}
