// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling
// mechanisms.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/repgraph/core/internal/metrics"
	"github.com/repgraph/core/internal/viz"
)

type CompareRequest struct {
	Graph json.RawMessage `json:"graph"`
	Other json.RawMessage `json:"other"`
}

type CompareResponse struct {
	Graph *viz.Payload `json:"graph"`
	Other *viz.Payload `json:"other"`
}

func (a *API) Compare(w http.ResponseWriter, r *http.Request) {
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

	var req CompareRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	graph, err := decodeGraph(req.Graph)
	if err != nil {
		http.Error(w, "Invalid graph: "+err.Error(), http.StatusBadRequest)
		return
	}

	other, err := decodeGraph(req.Other)
	if err != nil {
		http.Error(w, "Invalid other graph: "+err.Error(), http.StatusBadRequest)
		return
	}

	graph.Compare(other)
	metrics.AnalysesTotal.WithLabelValues("comparison").Inc()

	response := CompareResponse{
		Graph: viz.Build(graph, viz.AnalysisComparison, tokenView(r), a.palette),
		Other: viz.Build(other, viz.AnalysisComparison, tokenView(r), a.palette),
	}
	a.writeJSON(w, r, response)
}
