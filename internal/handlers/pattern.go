// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling
// mechanisms.
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/repgraph/core/internal/metrics"
	"github.com/repgraph/core/internal/models"
	"github.com/repgraph/core/internal/viz"
)

type PatternRequest struct {
	Graph   json.RawMessage `json:"graph"`
	Pattern json.RawMessage `json:"pattern"`
}

type PatternResponse struct {
	Matched bool         `json:"matched"`
	Graph   *viz.Payload `json:"graph"`
}

func (a *API) Pattern(w http.ResponseWriter, r *http.Request) {
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

	var req PatternRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	graph, err := decodeGraph(req.Graph)
	if err != nil {
		http.Error(w, "Invalid graph: "+err.Error(), http.StatusBadRequest)
		return
	}

	pattern, err := decodeGraph(req.Pattern)
	if err != nil {
		http.Error(w, "Invalid pattern: "+err.Error(), http.StatusBadRequest)
		return
	}

	root, err := patternRoot(pattern, r.URL.Query().Get("root"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	matcher := models.NewPatternMatcher(root)
	matched := matcher.GraphMatch(graph)
	metrics.AnalysesTotal.WithLabelValues("pattern").Inc()

	response := PatternResponse{
		Matched: matched,
		Graph:   viz.Build(graph, viz.AnalysisPattern, tokenView(r), a.palette),
	}
	a.writeJSON(w, r, response)
}

// patternRoot resolves the node the pattern is rooted at: an explicit root
// query parameter wins, then the pattern graph's top node.
func patternRoot(pattern *models.Graph, rootID string) (*models.Node, error) {
	if rootID != "" {
		root, ok := pattern.FindNode(rootID)
		if !ok {
			return nil, fmt.Errorf("unknown pattern root: %s", rootID)
		}
		return root, nil
	}
	if pattern.Top >= 0 {
		return pattern.Nodes[pattern.Top], nil
	}
	return nil, fmt.Errorf("pattern root not specified and pattern has no top node")
}
