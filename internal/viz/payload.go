// Package viz builds visualization payloads for the frontend renderer.
// It turns an analyzed graph into positioned, colored node and edge entries
// that a browser graph library can draw directly.
package viz

import (
	"fmt"

	"github.com/repgraph/core/internal/layout"
	"github.com/repgraph/core/internal/models"
)

// Analysis selects which set of match flags the color rules read.
type Analysis string

const (
	// AnalysisNone renders the plain graph: node kind and top determine color.
	AnalysisNone Analysis = "none"

	// AnalysisSubgraph highlights label-matched nodes and edge-matched edges.
	AnalysisSubgraph Analysis = "subgraph"

	// AnalysisComparison distinguishes label+span, label-only and span-only
	// correspondences.
	AnalysisComparison Analysis = "comparison"

	// AnalysisPattern highlights pattern occurrences; same rules as subgraph.
	AnalysisPattern Analysis = "pattern"
)

// maxX is the width all layers and token rows are spread across.
const maxX = 10.0

type Payload struct {
	Nodes []PayloadNode `json:"nodes"`
	Edges []PayloadEdge `json:"edges"`
}

type PayloadNode struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

type PayloadEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

// Build renders g into a payload for the frontend. The analysis type selects
// the color rules applied to the match flags left on g by the most recent
// analysis; tokenView additionally emits the sentence tokens and the
// node-to-token anchoring edges.
func Build(g *models.Graph, analysis Analysis, tokenView bool, palette Palette) *Payload {
	payload := &Payload{
		Nodes: []PayloadNode{},
		Edges: []PayloadEdge{},
	}

	layers := layout.Layers(g)

	if tokenView {
		appendTokens(payload, g, len(layers), analysis, palette)
		appendTokenEdges(payload, g)
	}

	appendNodes(payload, g, layers, analysis, palette)
	appendEdges(payload, g, analysis, palette)

	return payload
}

func appendTokens(payload *Payload, g *models.Graph, numLayers int, analysis Analysis, palette Palette) {
	color := palette.get(colorHighlight)
	if analysis != AnalysisNone {
		color = palette.get(colorDefault)
	}

	x := 0.0
	y := float64(numLayers)*0.5 + 0.5
	for i, t := range g.Tokens {
		// Space tokens by the width of the preceding form, wrapping into a
		// new row past the right edge.
		if i > 0 {
			x += 0.1 * float64(len(g.Tokens[i-1].Form)+1)
		}
		if x > maxX {
			x = 0
			y += 0.2
		}
		payload.Nodes = append(payload.Nodes, PayloadNode{
			ID:    fmt.Sprintf("t%d", t.Index),
			Label: t.Form,
			X:     x,
			Y:     y,
			Size:  0.5,
			Color: color,
		})
	}
}

func appendTokenEdges(payload *Payload, g *models.Graph) {
	counter := 0
	for _, n := range g.Nodes {
		for _, t := range n.Tokens {
			label := t.Lemma
			if t.Carg != "" {
				label = t.Lemma + "/" + t.Carg
			}
			payload.Edges = append(payload.Edges, PayloadEdge{
				ID:     fmt.Sprintf("te%d", counter),
				Source: fmt.Sprintf("n%d", n.ID),
				Target: fmt.Sprintf("t%d", t.Index),
				Label:  label,
			})
			counter++
		}
	}
}

func appendNodes(payload *Payload, g *models.Graph, layers [][]*models.Node, analysis Analysis, palette Palette) {
	for layer, nodes := range layers {
		spacing := maxX / float64(len(nodes))
		for pos, n := range nodes {
			size := 1.0
			if n.ID == g.Top {
				size = 2.0
			}
			payload.Nodes = append(payload.Nodes, PayloadNode{
				ID:    fmt.Sprintf("n%d", n.ID),
				Label: n.Label,
				X:     spacing * float64(pos),
				Y:     float64(layer) * 0.5,
				Size:  size,
				Color: nodeColor(n, g, analysis, palette),
			})
		}
	}
}

func nodeColor(n *models.Node, g *models.Graph, analysis Analysis, palette Palette) string {
	switch analysis {
	case AnalysisSubgraph, AnalysisPattern:
		if n.LabelMatch {
			return palette.get(colorHighlight)
		}
	case AnalysisComparison:
		switch {
		case n.LabelMatch && n.SpanMatch:
			return palette.get(colorHighlight)
		case n.LabelMatch:
			return palette.get(colorLabelMatch)
		case n.SpanMatch:
			return palette.get(colorSurface)
		}
	case AnalysisNone:
		if n.ID == g.Top {
			return palette.get(colorTop)
		}
		if n.Abstract {
			return palette.get(colorAbstract)
		}
		return palette.get(colorSurface)
	}
	return palette.get(colorDefault)
}

func appendEdges(payload *Payload, g *models.Graph, analysis Analysis, palette Palette) {
	counter := 0
	for _, n := range g.Nodes {
		for _, e := range n.Edges {
			payload.Edges = append(payload.Edges, PayloadEdge{
				ID:     fmt.Sprintf("e%d", counter),
				Source: fmt.Sprintf("n%d", n.ID),
				Target: fmt.Sprintf("n%d", e.Dest.ID),
				Label:  e.Label,
				Color:  edgeColor(e, analysis, palette),
			})
			counter++
		}
	}
}

func edgeColor(e *models.Edge, analysis Analysis, palette Palette) string {
	switch analysis {
	case AnalysisSubgraph, AnalysisPattern:
		if e.EdgeMatch {
			return palette.get(colorHighlight)
		}
	case AnalysisComparison:
		if e.EdgeMatch {
			return palette.get(colorSurface)
		}
	}
	return palette.get(colorDefault)
}
