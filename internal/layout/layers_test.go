// Package layout assigns the nodes of a dependency graph to horizontal
// layers for rendering. It computes structure only; coordinates and styling
// belong to the visualization builder.
package layout

import (
	"testing"

	"github.com/repgraph/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(id int, label string) *models.Node {
	return &models.Node{ID: id, Label: label}
}

func link(src, dest *models.Node) {
	src.Edges = append(src.Edges, &models.Edge{Label: "ARG", Dest: dest})
	dest.Adjacent = append(dest.Adjacent, src)
}

func graphOf(nodes ...*models.Node) *models.Graph {
	return &models.Graph{Top: -1, Nodes: nodes}
}

func TestLayers(t *testing.T) {
	t.Run("empty graph has no layers", func(t *testing.T) {
		assert.Nil(t, Layers(graphOf()))
	})

	t.Run("chain produces one node per layer", func(t *testing.T) {
		a := node(0, "a")
		b := node(1, "b")
		c := node(2, "c")
		link(a, b)
		link(b, c)

		layers := Layers(graphOf(a, b, c))

		require.Len(t, layers, 3)
		assert.Equal(t, []*models.Node{a}, layers[0])
		assert.Equal(t, []*models.Node{b}, layers[1])
		assert.Equal(t, []*models.Node{c}, layers[2])
	})

	t.Run("diamond joins at the shared successor", func(t *testing.T) {
		top := node(0, "top")
		left := node(1, "left")
		right := node(2, "right")
		bottom := node(3, "bottom")
		link(top, left)
		link(top, right)
		link(left, bottom)
		link(right, bottom)

		layers := Layers(graphOf(top, left, right, bottom))

		require.Len(t, layers, 3)
		assert.Equal(t, []*models.Node{top}, layers[0])
		assert.ElementsMatch(t, []*models.Node{left, right}, layers[1])
		assert.Equal(t, []*models.Node{bottom}, layers[2])
	})

	t.Run("cycle terminates and places every node once", func(t *testing.T) {
		a := node(0, "a")
		b := node(1, "b")
		c := node(2, "c")
		link(a, b)
		link(b, c)
		link(c, a)

		layers := Layers(graphOf(a, b, c))

		total := 0
		for _, layer := range layers {
			total += len(layer)
		}
		assert.Equal(t, 3, total)
	})

	t.Run("fully cyclic graph falls back to the top node", func(t *testing.T) {
		a := node(0, "a")
		b := node(1, "b")
		link(a, b)
		link(b, a)
		g := graphOf(a, b)
		g.Top = 1

		layers := Layers(g)

		require.Len(t, layers, 2)
		assert.Equal(t, []*models.Node{b}, layers[0])
		assert.Equal(t, []*models.Node{a}, layers[1])
	})

	t.Run("isolated nodes share the entry layer", func(t *testing.T) {
		a := node(0, "a")
		b := node(1, "b")

		layers := Layers(graphOf(a, b))

		require.Len(t, layers, 1)
		assert.ElementsMatch(t, []*models.Node{a, b}, layers[0])
	})

	t.Run("disconnected cycle is still placed", func(t *testing.T) {
		root := node(0, "root")
		x := node(1, "x")
		y := node(2, "y")
		link(x, y)
		link(y, x)

		layers := Layers(graphOf(root, x, y))

		total := 0
		for _, layer := range layers {
			total += len(layer)
		}
		assert.Equal(t, 3, total)
	})
}
