// Package parser provides utilities for parsing and transforming input data.
// It handles decoding of the DMRS exchange format, validation, and
// construction of the analyzable graph model.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/repgraph/core/internal/models"
)

func ParseDMRS(data []byte) (*models.DMRSGraph, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty graph data")
	}

	var raw models.DMRSGraph
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal graph: %w", err)
	}

	if raw.ID == "" {
		return nil, fmt.Errorf("invalid graph: missing id field")
	}

	if raw.Input == "" {
		return nil, fmt.Errorf("invalid graph: missing input field")
	}

	if raw.Source == "" {
		return nil, fmt.Errorf("invalid graph: missing source field")
	}

	return &raw, nil
}

// BuildGraph constructs the graph model from parsed exchange-format records.
// Node identity is position in the node list; edge and top indices must be
// valid positions, and a violation aborts construction entirely rather than
// producing a partial graph.
func BuildGraph(raw *models.DMRSGraph) (*models.Graph, error) {
	graph := &models.Graph{
		ID:     raw.ID,
		Input:  raw.Input,
		Source: raw.Source,
		Top:    -1,
	}

	for _, t := range raw.Tokens {
		graph.Tokens = append(graph.Tokens, &models.Token{
			Index: t.Index,
			Form:  t.Form,
			Lemma: t.Lemma,
			Carg:  t.Carg,
		})
	}

	for i, n := range raw.Nodes {
		node := &models.Node{
			ID:       i,
			Label:    n.Label,
			Abstract: n.Abstract,
		}
		for _, ti := range n.Tokens {
			if ti < 0 || ti >= len(graph.Tokens) {
				return nil, fmt.Errorf("node %d references token index %d out of range", i, ti)
			}
			node.Tokens = append(node.Tokens, graph.Tokens[ti])
		}
		graph.Nodes = append(graph.Nodes, node)
	}

	for i, e := range raw.Edges {
		if e.Source < 0 || e.Source >= len(graph.Nodes) {
			return nil, fmt.Errorf("edge %d references source node %d out of range", i, e.Source)
		}
		if e.Target < 0 || e.Target >= len(graph.Nodes) {
			return nil, fmt.Errorf("edge %d references target node %d out of range", i, e.Target)
		}
		src := graph.Nodes[e.Source]
		dest := graph.Nodes[e.Target]
		src.Edges = append(src.Edges, &models.Edge{Label: e.Label, Dest: dest})
		dest.Adjacent = append(dest.Adjacent, src)
	}

	if len(raw.Tops) > 0 {
		top := raw.Tops[0]
		if top < 0 || top >= len(graph.Nodes) {
			return nil, fmt.Errorf("top index %d out of range", top)
		}
		graph.Top = top
	}

	return graph, nil
}
