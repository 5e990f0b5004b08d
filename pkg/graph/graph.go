// Package graph stores the waypoint web as a directed weighted graph in
// CSR (Compressed Sparse Row) format.
package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jbeda/geom"
)

// WeightFunc computes the cost of travelling an edge from a to b. Results
// below zero are clamped to zero; the search requires non-negative weights.
type WeightFunc func(a, b geom.Coord) float64

// Euclidean is the base weight function: straight-line distance.
func Euclidean(a, b geom.Coord) float64 {
	return a.DistanceFrom(b)
}

var (
	// ErrNoNodes is returned when a graph is built from an empty position list.
	ErrNoNodes = errors.New("graph has no nodes")

	// ErrInvalidConnection is returned when a connection references a node
	// index out of range, or connects a node to itself.
	ErrInvalidConnection = errors.New("invalid connection")
)

// Graph is a directed graph in CSR format.
type Graph struct {
	NumNodes int
	NumEdges int
	FirstOut []int32      // len: NumNodes + 1; FirstOut[i]..FirstOut[i+1] are edges from node i
	Tail     []int32      // len: NumEdges; source node, kept for reweighting
	Head     []int32      // len: NumEdges; target node
	Weight   []float64    // len: NumEdges; non-negative
	Pos      []geom.Coord // len: NumNodes
}

// Build constructs a graph from waypoint positions and directed index-pair
// connections. Duplicate ordered pairs collapse to a single edge;
// bidirectional movement requires two explicit connections. Index
// validation happens here, at construction, so searches never have to
// bounds-check.
func Build(positions []geom.Coord, connections [][2]int, wf WeightFunc) (*Graph, error) {
	if len(positions) == 0 {
		return nil, ErrNoNodes
	}
	n := len(positions)

	for _, c := range connections {
		if c[0] < 0 || c[0] >= n || c[1] < 0 || c[1] >= n || c[0] == c[1] {
			return nil, fmt.Errorf("%w: %v with %d nodes", ErrInvalidConnection, c, n)
		}
	}

	type edge struct {
		from, to int32
		weight   float64
	}
	seen := make(map[[2]int]bool, len(connections))
	edges := make([]edge, 0, len(connections))
	for _, c := range connections {
		if seen[c] {
			continue
		}
		seen[c] = true
		edges = append(edges, edge{
			from:   int32(c[0]),
			to:     int32(c[1]),
			weight: clampWeight(wf(positions[c[0]], positions[c[1]])),
		})
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		return edges[i].to < edges[j].to
	})

	g := &Graph{
		NumNodes: n,
		NumEdges: len(edges),
		FirstOut: make([]int32, n+1),
		Tail:     make([]int32, len(edges)),
		Head:     make([]int32, len(edges)),
		Weight:   make([]float64, len(edges)),
		Pos:      append([]geom.Coord(nil), positions...),
	}
	for i, e := range edges {
		g.Tail[i] = e.from
		g.Head[i] = e.to
		g.Weight[i] = e.weight
		g.FirstOut[e.from+1]++
	}
	for i := 1; i <= n; i++ {
		g.FirstOut[i] += g.FirstOut[i-1]
	}
	return g, nil
}

// EdgesFrom returns the range of edge indices for edges originating from node u.
func (g *Graph) EdgesFrom(u int32) (start, end int32) {
	return g.FirstOut[u], g.FirstOut[u+1]
}

// Recalculate recomputes every edge weight in place from the current node
// positions. Weights change wholesale, never incrementally; any route
// cached over this graph must be discarded by the caller.
func (g *Graph) Recalculate(wf WeightFunc) {
	for e := 0; e < g.NumEdges; e++ {
		g.Weight[e] = clampWeight(wf(g.Pos[g.Tail[e]], g.Pos[g.Head[e]]))
	}
}

// Bounds returns the axis-aligned bounding box of all waypoints.
func (g *Graph) Bounds() geom.Rect {
	r := geom.Rect{Min: g.Pos[0], Max: g.Pos[0]}
	for _, p := range g.Pos[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}

func clampWeight(w float64) float64 {
	if w < 0 {
		return 0
	}
	return w
}
