package datastructure

import (
	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/geo"
)

// Point is a graph vertex. identity is exact coordinate equality, junction
// vertices are shared between geometries in the source data.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

func NewPoint(lon, lat float64) Point {
	return Point{Lon: lon, Lat: lat}
}

func (p Point) GetLon() float64 {
	return p.Lon
}

func (p Point) GetLat() float64 {
	return p.Lat
}

func (p Point) ToCoordinate() geo.Coordinate {
	return geo.NewCoordinate(p.Lat, p.Lon)
}

type Edge struct {
	To     Point
	Weight float64 // meter
	Name   string
	Kind   pkg.EdgeKind
}

func NewEdge(to Point, weight float64, name string, kind pkg.EdgeKind) Edge {
	return Edge{To: to, Weight: weight, Name: name, Kind: kind}
}

// Graph is an adjacency-list weighted graph keyed by vertex coordinates.
// built once by the graph builder, read-only afterwards. concurrent queries
// never mutate it.
type Graph struct {
	adj      map[Point][]Edge
	vertices []Point
	numEdges int

	// connectivity, computed once at build time
	componentID      map[Point]int32
	numComponents    int
	largestComponent []Point
}

func NewGraph() *Graph {
	return &Graph{
		adj: make(map[Point][]Edge),
	}
}

// ModeGraphs bundles the per-mode graphs produced by one build run.
type ModeGraphs struct {
	Driving *Graph
	Walking *Graph
}

func (g *Graph) AddVertex(p Point) {
	if _, ok := g.adj[p]; ok {
		return
	}
	g.adj[p] = nil
	g.vertices = append(g.vertices, p)
}

// AddEdge adds an undirected edge between from and to. if any edge already
// exists between the pair the call is a no-op (first writer wins).
func (g *Graph) AddEdge(from, to Point, weight float64, name string, kind pkg.EdgeKind) {
	if g.HasEdgeBetween(from, to) {
		return
	}
	g.AddVertex(from)
	g.AddVertex(to)
	g.adj[from] = append(g.adj[from], NewEdge(to, weight, name, kind))
	g.adj[to] = append(g.adj[to], NewEdge(from, weight, name, kind))
	g.numEdges++
}

// AddDirectedEdge adds a one-way edge from → to, used for driving graphs with
// oneway restrictions. duplicate pairs follow the same first-writer-wins rule.
func (g *Graph) AddDirectedEdge(from, to Point, weight float64, name string, kind pkg.EdgeKind) {
	if g.HasEdgeBetween(from, to) {
		return
	}
	g.AddVertex(from)
	g.AddVertex(to)
	g.adj[from] = append(g.adj[from], NewEdge(to, weight, name, kind))
	g.numEdges++
}

func (g *Graph) HasEdgeBetween(a, b Point) bool {
	for _, e := range g.adj[a] {
		if e.To == b {
			return true
		}
	}
	for _, e := range g.adj[b] {
		if e.To == a {
			return true
		}
	}
	return false
}

// EdgeBetween returns the out-edge from a to b.
func (g *Graph) EdgeBetween(a, b Point) (Edge, bool) {
	for _, e := range g.adj[a] {
		if e.To == b {
			return e, true
		}
	}
	return Edge{}, false
}

func (g *Graph) OutEdgesOf(p Point) []Edge {
	return g.adj[p]
}

func (g *Graph) HasVertex(p Point) bool {
	_, ok := g.adj[p]
	return ok
}

// Vertices returns all vertices in insertion order.
func (g *Graph) Vertices() []Point {
	return g.vertices
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}

// ComputeComponents runs bfs over the whole graph and caches the component id
// of every vertex plus the largest connected component. must be called once,
// after the last edge is added.
func (g *Graph) ComputeComponents() {
	g.componentID = make(map[Point]int32, len(g.vertices))
	g.numComponents = 0
	g.largestComponent = nil

	visited := make(map[Point]bool, len(g.vertices))
	largestSize := 0

	for _, s := range g.vertices {
		if visited[s] {
			continue
		}
		id := int32(g.numComponents)
		g.numComponents++

		component := make([]Point, 0, 16)
		queue := []Point{s}
		visited[s] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			g.componentID[u] = id
			component = append(component, u)
			for _, e := range g.adj[u] {
				if !visited[e.To] {
					visited[e.To] = true
					queue = append(queue, e.To)
				}
			}
		}

		if len(component) > largestSize {
			largestSize = len(component)
			g.largestComponent = component
		}
	}
}

func (g *Graph) NumberOfComponents() int {
	return g.numComponents
}

func (g *Graph) IsConnected() bool {
	return g.numComponents <= 1
}

func (g *Graph) SameComponent(a, b Point) bool {
	ca, okA := g.componentID[a]
	cb, okB := g.componentID[b]
	return okA && okB && ca == cb
}

// LargestComponent returns the vertices of the largest connected component,
// the re-snap target when the graph is disconnected.
func (g *Graph) LargestComponent() []Point {
	return g.largestComponent
}

func (g *Graph) InLargestComponent(p Point) bool {
	if len(g.largestComponent) == 0 {
		return false
	}
	id, ok := g.componentID[p]
	return ok && id == g.componentID[g.largestComponent[0]]
}
