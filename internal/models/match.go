// Package models defines the core data structures for semantic dependency
// graphs. It includes the exchange-format records and the analyzable graph
// model with its match-flag state.
package models

// ResetMatches returns every node's label-match and span-match flag and every
// edge's edge-match flag to false. Every analysis starts from this baseline so
// no residue from a previous analysis leaks into the next. Idempotent.
func (g *Graph) ResetMatches() {
	for _, n := range g.Nodes {
		n.LabelMatch = false
		n.SpanMatch = false
		for _, e := range n.Edges {
			e.EdgeMatch = false
		}
	}
}

// MarkSubgraph marks the subgraph reachable from root along outgoing edges:
// reached nodes get label-match, traversed edges get edge-match. root must
// belong to this graph.
func (g *Graph) MarkSubgraph(root *Node) {
	g.ResetMatches()
	// Visitation bookkeeping is kept apart from the presentation flags so a
	// traversal never depends on what a renderer reads.
	markNode(root, make(map[*Node]bool))
}

func markNode(n *Node, visited map[*Node]bool) {
	visited[n] = true
	n.LabelMatch = true
	for _, e := range n.Edges {
		e.EdgeMatch = true
		// Skipping visited destinations is what terminates the traversal on
		// cyclic graphs.
		if !visited[e.Dest] {
			markNode(e.Dest, visited)
		}
	}
}

// Compare marks the correspondences between this graph and other. Every node
// pair with equal labels is compared, so one node may match several nodes in
// the other graph; no injective assignment is computed. Both graphs are reset
// first and both are left marked for the renderer to read.
func (g *Graph) Compare(other *Graph) {
	g.ResetMatches()
	other.ResetMatches()
	if other.NodeCount() == 0 {
		return
	}
	for _, n := range g.Nodes {
		for _, o := range other.Nodes {
			if n.Equals(o) {
				n.CompareNode(o)
			}
		}
	}
}
