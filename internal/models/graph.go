// Package models defines the core data structures for semantic dependency
// graphs. It includes the exchange-format records and the analyzable graph
// model with its match-flag state.
package models

import "fmt"

// Token is a lexical unit of the source sentence. Tokens are immutable after
// construction and are referenced, never owned, by the nodes spanning them.
type Token struct {
	Index int
	Form  string
	Lemma string
	Carg  string
}

// Edge is a labeled directed connection to a destination node. The destination
// is owned by the graph's node sequence, not by the edge; the source is the
// node holding this edge. EdgeMatch is the only mutable field.
type Edge struct {
	Label     string
	Dest      *Node
	EdgeMatch bool
}

// Node is a labeled vertex of the dependency graph. ID equals the node's
// position in its graph's node sequence and is stable for the graph's
// lifetime. Adjacent holds weak back-references to predecessor nodes and is
// used for lookups only. LabelMatch and SpanMatch are the only mutable
// fields; everything else is fixed at construction.
type Node struct {
	ID       int
	Label    string
	Abstract bool
	Edges    []*Edge
	Adjacent []*Node
	Tokens   []*Token

	LabelMatch bool
	SpanMatch  bool
}

// Equals reports whether two nodes are considered equal for comparison
// purposes: their labels agree.
func (n *Node) Equals(other *Node) bool {
	return n.Label == other.Label
}

// CompareNode records the correspondence between two nodes already known to
// be equal: label-match is set on both, and span-match is set on both when
// the nodes span the same token positions.
func (n *Node) CompareNode(other *Node) {
	n.LabelMatch = true
	other.LabelMatch = true
	if n.spanEqual(other) {
		n.SpanMatch = true
		other.SpanMatch = true
	}
}

func (n *Node) spanEqual(other *Node) bool {
	if len(n.Tokens) != len(other.Tokens) {
		return false
	}
	for i, t := range n.Tokens {
		if t.Index != other.Tokens[i].Index {
			return false
		}
	}
	return true
}

// Graph holds the token and node collections for one semantic dependency
// graph. Nodes and tokens are owned exclusively by the graph; edges between
// them never cross graph boundaries. Top is the index of the designated top
// node, or -1 when the graph has none.
type Graph struct {
	ID     string
	Input  string
	Source string
	Tokens []*Token
	Nodes  []*Node
	Top    int
}

func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

func (g *Graph) TokenCount() int {
	return len(g.Tokens)
}

// FindNode looks up a node by its user-facing id of the form "n<index>",
// as produced in visualization payloads. A missing id is an expected outcome
// for user-entered queries, so absence is reported, not an error.
func (g *Graph) FindNode(nodeID string) (*Node, bool) {
	for _, n := range g.Nodes {
		if fmt.Sprintf("n%d", n.ID) == nodeID {
			return n, true
		}
	}
	return nil, false
}
