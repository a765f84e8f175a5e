// Package layout assigns the nodes of a dependency graph to horizontal
// layers for rendering. It computes structure only; coordinates and styling
// belong to the visualization builder.
package layout

import "github.com/repgraph/core/internal/models"

// Layers arranges all nodes of g into layers by breadth-first depth from the
// graph's entry nodes. Entry nodes are those with no predecessors; a graph
// whose cycles leave no such node falls back to the top node, then to node 0.
// Nodes left unreached (cycles disconnected from every entry) seed additional
// passes in id order, so every node appears in exactly one layer and the
// result is deterministic. Safe on cyclic graphs.
func Layers(g *models.Graph) [][]*models.Node {
	if g.NodeCount() == 0 {
		return nil
	}

	visited := make([]bool, g.NodeCount())
	depth := make([]int, g.NodeCount())

	roots := entryNodes(g)
	for len(roots) > 0 {
		queue := roots
		for _, r := range queue {
			visited[r.ID] = true
			depth[r.ID] = 0
		}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, e := range current.Edges {
				if visited[e.Dest.ID] {
					continue
				}
				visited[e.Dest.ID] = true
				depth[e.Dest.ID] = depth[current.ID] + 1
				queue = append(queue, e.Dest)
			}
		}

		roots = nil
		for _, n := range g.Nodes {
			if !visited[n.ID] {
				roots = []*models.Node{n}
				break
			}
		}
	}

	maxDepth := 0
	for _, n := range g.Nodes {
		if depth[n.ID] > maxDepth {
			maxDepth = depth[n.ID]
		}
	}

	layers := make([][]*models.Node, maxDepth+1)
	for _, n := range g.Nodes {
		layers[depth[n.ID]] = append(layers[depth[n.ID]], n)
	}
	return layers
}

func entryNodes(g *models.Graph) []*models.Node {
	var roots []*models.Node
	for _, n := range g.Nodes {
		if len(n.Adjacent) == 0 {
			roots = append(roots, n)
		}
	}
	if len(roots) > 0 {
		return roots
	}
	if g.Top >= 0 {
		return []*models.Node{g.Nodes[g.Top]}
	}
	return []*models.Node{g.Nodes[0]}
}
