package routing

import (
	"errors"
	"math"

	"across/pkg/graph"
)

// ErrNoRoute is returned when no path exists between the requested nodes.
var ErrNoRoute = errors.New("no route found")

// Pathfinder runs A* searches over a graph. The search state is allocated
// once and reused, so a Pathfinder must not be shared between goroutines.
type Pathfinder struct {
	g *graph.Graph

	gCost  []float64
	hCost  []float64 // memoized heuristic per node; NaN marks not yet computed
	parent []int32
	closed []bool
	open   minHeap
}

// NewPathfinder creates a pathfinder over g.
func NewPathfinder(g *graph.Graph) *Pathfinder {
	return &Pathfinder{
		g:      g,
		gCost:  make([]float64, g.NumNodes),
		hCost:  make([]float64, g.NumNodes),
		parent: make([]int32, g.NumNodes),
		closed: make([]bool, g.NumNodes),
	}
}

// Pathfind returns the node sequence of a minimum-cost path from start to
// end, inclusive of both, along with its total cost. It returns ErrNoRoute
// when end is unreachable from start. Node indices must be in range; the
// graph's Build already validated every index this package is handed.
func (p *Pathfinder) Pathfind(start, end int32) ([]int32, float64, error) {
	for i := range p.gCost {
		p.gCost[i] = math.Inf(1)
		p.hCost[i] = math.NaN()
		p.parent[i] = -1
		p.closed[i] = false
	}
	p.open.reset()

	p.gCost[start] = 0
	p.open.push(start, p.h(start, end))

	for p.open.len() > 0 {
		item := p.open.pop()
		u := item.node
		if p.closed[u] {
			continue // stale entry from an earlier relaxation
		}
		p.closed[u] = true
		if u == end {
			return p.reconstruct(start, end), p.gCost[end], nil
		}

		first, last := p.g.EdgesFrom(u)
		for e := first; e < last; e++ {
			v := p.g.Head[e]
			if p.closed[v] {
				continue
			}
			g := p.gCost[u] + p.g.Weight[e]
			if g < p.gCost[v] {
				p.gCost[v] = g
				p.parent[v] = u
				p.open.push(v, g+p.h(v, end))
			}
		}
	}
	return nil, 0, ErrNoRoute
}

// h is the admissible heuristic: straight-line distance to the target.
// Edge weights are at least the Euclidean distance (obstruction only
// inflates them), so the heuristic never overestimates.
func (p *Pathfinder) h(node, end int32) float64 {
	if math.IsNaN(p.hCost[node]) {
		p.hCost[node] = p.g.Pos[node].DistanceFrom(p.g.Pos[end])
	}
	return p.hCost[node]
}

func (p *Pathfinder) reconstruct(start, end int32) []int32 {
	n := 1
	for u := end; u != start; u = p.parent[u] {
		n++
	}
	path := make([]int32, n)
	for u, i := end, n-1; i >= 0; u, i = p.parent[u], i-1 {
		path[i] = u
	}
	return path
}
