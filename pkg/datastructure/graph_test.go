package datastructure

import (
	"testing"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeFirstWriterWins(t *testing.T) {
	g := NewGraph()
	a := NewPoint(7.3884, 8.9886)
	b := NewPoint(7.3890, 8.9890)

	g.AddEdge(a, b, 80, "Obasanjo Way", pkg.ROAD)
	g.AddEdge(a, b, 999, "Impostor Road", pkg.ROAD)
	g.AddEdge(b, a, 123, "Reverse Road", pkg.ROAD)

	require.Equal(t, 1, g.NumberOfEdges())
	e, ok := g.EdgeBetween(a, b)
	require.True(t, ok)
	assert.Equal(t, 80.0, e.Weight)
	assert.Equal(t, "Obasanjo Way", e.Name)
}

func TestAddDirectedEdge(t *testing.T) {
	g := NewGraph()
	a := NewPoint(7.3884, 8.9886)
	b := NewPoint(7.3890, 8.9890)

	g.AddDirectedEdge(a, b, 80, "One Way Street", pkg.ROAD)

	_, forward := g.EdgeBetween(a, b)
	_, backward := g.EdgeBetween(b, a)
	assert.True(t, forward)
	assert.False(t, backward)
}

func TestComputeComponents(t *testing.T) {
	g := NewGraph()
	// island one: three vertices
	a := NewPoint(7.3884, 8.9886)
	b := NewPoint(7.3890, 8.9890)
	c := NewPoint(7.3895, 8.9893)
	// island two: two vertices
	d := NewPoint(7.4000, 9.0000)
	e := NewPoint(7.4005, 9.0003)

	g.AddEdge(a, b, 80, "", pkg.ROAD)
	g.AddEdge(b, c, 70, "", pkg.ROAD)
	g.AddEdge(d, e, 60, "", pkg.ROAD)
	g.ComputeComponents()

	assert.Equal(t, 2, g.NumberOfComponents())
	assert.False(t, g.IsConnected())
	assert.True(t, g.SameComponent(a, c))
	assert.False(t, g.SameComponent(a, d))

	require.Len(t, g.LargestComponent(), 3)
	assert.True(t, g.InLargestComponent(a))
	assert.False(t, g.InLargestComponent(d))
}

func TestComputeComponentsConnected(t *testing.T) {
	g := NewGraph()
	a := NewPoint(0, 0)
	b := NewPoint(0, 1)
	g.AddEdge(a, b, 1, "", pkg.ROAD)
	g.ComputeComponents()

	assert.True(t, g.IsConnected())
	assert.Len(t, g.LargestComponent(), 2)
}
