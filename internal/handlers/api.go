// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling
// mechanisms.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/repgraph/core/internal/models"
	"github.com/repgraph/core/internal/parser"
	"github.com/repgraph/core/internal/viz"
)

// API bundles the handlers with the style configuration they render with.
// The palette is injected here so presentation state never lives on a graph.
type API struct {
	palette viz.Palette
}

func New(palette viz.Palette) *API {
	return &API{palette: palette}
}

func (a *API) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "true" {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func decodeGraph(data []byte) (*models.Graph, error) {
	raw, err := parser.ParseDMRS(data)
	if err != nil {
		return nil, err
	}
	return parser.BuildGraph(raw)
}

// tokenView reports whether the request asks for the token view; it is the
// default unless view=node is given.
func tokenView(r *http.Request) bool {
	return r.URL.Query().Get("view") != "node"
}
