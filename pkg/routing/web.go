// Package routing finds minimum-cost paths through a waypoint web and
// exposes them as arc-length routes agents can walk by progress.
package routing

import (
	"errors"
	"fmt"

	"github.com/jbeda/geom"

	"across/pkg/graph"
)

// ErrInvalidEndpoint is returned when a web's start or end node index is
// out of range, or when the two coincide.
var ErrInvalidEndpoint = errors.New("invalid endpoint")

// Web is a waypoint graph with designated start and end nodes and a cached
// best route between them. Construction fails unless a route exists, so
// Route always has one to return. Web is not safe for concurrent use.
type Web struct {
	g          *graph.Graph
	pf         *Pathfinder
	start, end int32
	route      *Route
	cost       float64
}

// NewWeb builds the graph, validates the endpoints and computes the
// initial route. The weight function wf seeds the edge weights and is
// typically graph.Euclidean for an unobstructed field.
func NewWeb(positions []geom.Coord, connections [][2]int, start, end int, wf graph.WeightFunc) (*Web, error) {
	if start < 0 || start >= len(positions) || end < 0 || end >= len(positions) || start == end {
		return nil, fmt.Errorf("%w: start %d, end %d with %d nodes", ErrInvalidEndpoint, start, end, len(positions))
	}
	g, err := graph.Build(positions, connections, wf)
	if err != nil {
		return nil, err
	}
	w := &Web{
		g:     g,
		pf:    NewPathfinder(g),
		start: int32(start),
		end:   int32(end),
	}
	if err := w.repath(); err != nil {
		return nil, err
	}
	return w, nil
}

// RecalculateWeights reweights every edge and recomputes the best route
// from scratch. Weights only ever inflate distances, never remove edges,
// so a web that was connected at construction stays connected; an
// ErrNoRoute here indicates a weight function returning infinities.
func (w *Web) RecalculateWeights(wf graph.WeightFunc) error {
	w.g.Recalculate(wf)
	return w.repath()
}

func (w *Web) repath() error {
	nodes, cost, err := w.pf.Pathfind(w.start, w.end)
	if err != nil {
		return err
	}
	points := make([]geom.Coord, len(nodes))
	for i, n := range nodes {
		points[i] = w.g.Pos[n]
	}
	route, err := NewRoute(points)
	if err != nil {
		return err
	}
	w.route = route
	w.cost = cost
	return nil
}

// Route returns the current best route from start to end.
func (w *Web) Route() *Route {
	return w.route
}

// Cost returns the total edge cost of the current best route. This is the
// weighted cost, which exceeds the route's arc length when edges are
// obstructed.
func (w *Web) Cost() float64 {
	return w.cost
}

// Graph returns the underlying waypoint graph.
func (w *Web) Graph() *graph.Graph {
	return w.g
}

// Start returns the spawn node index.
func (w *Web) Start() int32 {
	return w.start
}

// End returns the goal node index.
func (w *Web) End() int32 {
	return w.end
}
