package routing

import (
	da "github.com/lintang-b-s/campusnav/pkg/datastructure"
)

// Dijkstra single-pair shortest path over non-negative edge weights. ties in
// the priority queue are broken by insertion sequence, so the returned path
// is deterministic for a given graph build.
type Dijkstra struct {
	graph *da.Graph

	pq        *da.MinHeap[da.Point]
	dist      map[da.Point]float64
	parent    map[da.Point]da.Point
	heapNodes map[da.Point]*da.PriorityQueueNode[da.Point]
	settled   map[da.Point]bool
}

func NewDijkstra(graph *da.Graph) *Dijkstra {
	return &Dijkstra{
		graph: graph,
	}
}

// ShortestPath runs dijkstra from source until target is settled. returns the
// vertex path (source first), the total distance in meter, and whether a path
// exists.
func (d *Dijkstra) ShortestPath(source, target da.Point) ([]da.Point, float64, bool) {
	if !d.graph.HasVertex(source) || !d.graph.HasVertex(target) {
		return nil, 0, false
	}

	d.pq = da.NewFourAryHeap[da.Point]()
	d.dist = make(map[da.Point]float64, d.graph.NumberOfVertices())
	d.parent = make(map[da.Point]da.Point, d.graph.NumberOfVertices())
	d.heapNodes = make(map[da.Point]*da.PriorityQueueNode[da.Point], d.graph.NumberOfVertices())
	d.settled = make(map[da.Point]bool, d.graph.NumberOfVertices())

	sNode := da.NewPriorityQueueNode(0, source)
	d.pq.Insert(sNode)
	d.dist[source] = 0
	d.heapNodes[source] = sNode

	for !d.pq.IsEmpty() {
		uNode, err := d.pq.ExtractMin()
		if err != nil {
			break
		}
		u := uNode.GetItem()
		if d.settled[u] {
			continue
		}
		d.settled[u] = true

		if u == target {
			return d.unwindPath(source, target), d.dist[target], true
		}

		for _, e := range d.graph.OutEdgesOf(u) {
			v := e.To
			if d.settled[v] {
				continue
			}
			newDist := d.dist[u] + e.Weight
			oldDist, labelled := d.dist[v]
			if labelled && newDist >= oldDist {
				continue
			}

			d.dist[v] = newDist
			d.parent[v] = u
			if labelled {
				if err := d.pq.DecreaseKey(d.heapNodes[v], newDist); err == nil {
					continue
				}
			}
			vNode := da.NewPriorityQueueNode(newDist, v)
			d.heapNodes[v] = vNode
			d.pq.Insert(vNode)
		}
	}

	return nil, 0, false
}

func (d *Dijkstra) unwindPath(source, target da.Point) []da.Point {
	path := []da.Point{target}
	for cur := target; cur != source; {
		cur = d.parent[cur]
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
