package routing

import (
	"testing"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPathPicksCheaperDetour(t *testing.T) {
	g := datastructure.NewGraph()
	a := datastructure.NewPoint(0, 0)
	b := datastructure.NewPoint(1, 0)
	c := datastructure.NewPoint(2, 0)
	// direct a-c is heavier than the a-b-c detour
	g.AddEdge(a, b, 1, "", pkg.ROAD)
	g.AddEdge(b, c, 1, "", pkg.ROAD)
	g.AddEdge(a, c, 5, "", pkg.ROAD)

	path, dist, found := NewDijkstra(g).ShortestPath(a, c)
	require.True(t, found)
	assert.Equal(t, []datastructure.Point{a, b, c}, path)
	assert.Equal(t, 2.0, dist)
}

func TestShortestPathSourceEqualsTarget(t *testing.T) {
	g := datastructure.NewGraph()
	a := datastructure.NewPoint(0, 0)
	b := datastructure.NewPoint(1, 0)
	g.AddEdge(a, b, 1, "", pkg.ROAD)

	path, dist, found := NewDijkstra(g).ShortestPath(a, a)
	require.True(t, found)
	assert.Equal(t, []datastructure.Point{a}, path)
	assert.Zero(t, dist)
}

func TestShortestPathDisconnected(t *testing.T) {
	g := datastructure.NewGraph()
	a := datastructure.NewPoint(0, 0)
	b := datastructure.NewPoint(1, 0)
	c := datastructure.NewPoint(10, 10)
	d := datastructure.NewPoint(11, 10)
	g.AddEdge(a, b, 1, "", pkg.ROAD)
	g.AddEdge(c, d, 1, "", pkg.ROAD)

	_, _, found := NewDijkstra(g).ShortestPath(a, c)
	assert.False(t, found)
}

func TestShortestPathRespectsDirection(t *testing.T) {
	g := datastructure.NewGraph()
	a := datastructure.NewPoint(0, 0)
	b := datastructure.NewPoint(1, 0)
	g.AddDirectedEdge(a, b, 1, "", pkg.ROAD)

	_, _, forward := NewDijkstra(g).ShortestPath(a, b)
	assert.True(t, forward)
	_, _, backward := NewDijkstra(g).ShortestPath(b, a)
	assert.False(t, backward)
}

func TestShortestPathDeterministicOnEqualCost(t *testing.T) {
	// two equal-cost routes around a diamond. repeated queries must keep
	// returning the same path.
	g := datastructure.NewGraph()
	s := datastructure.NewPoint(0, 0)
	up := datastructure.NewPoint(1, 1)
	down := datastructure.NewPoint(1, -1)
	e := datastructure.NewPoint(2, 0)
	g.AddEdge(s, up, 1, "", pkg.ROAD)
	g.AddEdge(s, down, 1, "", pkg.ROAD)
	g.AddEdge(up, e, 1, "", pkg.ROAD)
	g.AddEdge(down, e, 1, "", pkg.ROAD)

	first, dist, found := NewDijkstra(g).ShortestPath(s, e)
	require.True(t, found)
	assert.Equal(t, 2.0, dist)
	for i := 0; i < 10; i++ {
		path, _, found := NewDijkstra(g).ShortestPath(s, e)
		require.True(t, found)
		assert.Equal(t, first, path)
	}
}
