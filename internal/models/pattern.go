// Package models defines the core data structures for semantic dependency
// graphs. It includes the exchange-format records and the analyzable graph
// model with its match-flag state.
package models

// PatternMatcher searches a target graph for occurrences of a rooted pattern
// by greedy backtracking: candidate edges are tried in stored order and the
// first recursive success is accepted, backtracking only on deeper failure.
// This is a containment search, not full subgraph isomorphism; node reuse
// across sibling branches is not checked.
//
// The pattern's outgoing-edge structure must be finite — practically a tree
// or DAG. A cyclic pattern causes unbounded recursion.
//
// A matcher owns a scratch buffer that is reset at the start of every
// attempt, so an instance is reusable across searches but must not be shared
// by concurrent callers.
type PatternMatcher struct {
	pattern *Node
	matched []*Node
}

// NewPatternMatcher builds a matcher for the subgraph pattern rooted at
// pattern.
func NewPatternMatcher(pattern *Node) *PatternMatcher {
	return &PatternMatcher{pattern: pattern}
}

// GraphMatch reports whether g contains at least one occurrence of the
// pattern, marking the nodes and edges of every occurrence found. Every node
// whose label matches the pattern root is tried, so the marked flags are the
// union of all occurrences; the scan never stops at the first success.
func (m *PatternMatcher) GraphMatch(g *Graph) bool {
	g.ResetMatches()
	matched := false
	for _, candidate := range g.Nodes {
		if candidate.Label != m.pattern.Label {
			continue
		}
		// Occurrences are independent; the scratch list starts fresh for each
		// candidate while the committed flags accumulate.
		m.matched = append(m.matched[:0], candidate)
		if m.nodeMatch(m.pattern, candidate) {
			m.markLabels()
			matched = true
		}
	}
	return matched
}

// nodeMatch checks whether the subgraph rooted at test contains the pattern
// rooted at pattern, given their labels already agreed.
func (m *PatternMatcher) nodeMatch(pattern, test *Node) bool {
	// A pattern leaf matches anything with the same label.
	if len(pattern.Edges) == 0 {
		return true
	}
	// More pattern edges than test edges can never be satisfied.
	if len(pattern.Edges) > len(test.Edges) {
		return false
	}
	for _, patternEdge := range pattern.Edges {
		found := false
		for _, testEdge := range test.Edges {
			if patternEdge.Label != testEdge.Label || patternEdge.Dest.Label != testEdge.Dest.Label {
				continue
			}
			m.matched = append(m.matched, testEdge.Dest)
			if m.nodeMatch(patternEdge.Dest, testEdge.Dest) {
				found = true
				break
			}
			// Undo the tentative choice and keep scanning the remaining
			// test edges for this pattern edge.
			m.matched = m.matched[:len(m.matched)-1]
		}
		if !found {
			return false
		}
	}
	return true
}

// markLabels commits one successful occurrence: the scratch list holds the
// matched nodes in acceptance order, root first. Edges between matched nodes
// are reconstructed by scanning backward through earlier entries, since the
// scratch list stores nodes only.
func (m *PatternMatcher) markLabels() {
	if len(m.matched) == 0 {
		return
	}
	m.matched[0].LabelMatch = true
	for i := 1; i < len(m.matched); i++ {
		node := m.matched[i]
		node.LabelMatch = true
		for j := i - 1; j >= 0; j-- {
			for _, e := range m.matched[j].Edges {
				if e.Dest == node {
					e.EdgeMatch = true
				}
			}
		}
	}
}
