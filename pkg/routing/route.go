package routing

import (
	"errors"
	"sort"

	"github.com/jbeda/geom"

	"across/pkg/collision"
)

// ErrDegenerateRoute is returned when a route has fewer than two points or
// zero total length. Agents advance by fractional progress; a route they
// cannot move along would stall them forever.
var ErrDegenerateRoute = errors.New("degenerate route")

// Route is a polyline parameterized by arc length. Progress 0 is the first
// point and progress 1 the last; equal progress deltas cover equal
// distances regardless of how the polyline's segments are sized.
type Route struct {
	points []geom.Coord
	cum    []float64 // cum[i] is the path distance from points[0] to points[i]
	length float64
}

// NewRoute builds a route through the given points in order.
func NewRoute(points []geom.Coord) (*Route, error) {
	if len(points) < 2 {
		return nil, ErrDegenerateRoute
	}
	cum := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		cum[i] = cum[i-1] + points[i-1].DistanceFrom(points[i])
	}
	length := cum[len(cum)-1]
	if length == 0 {
		return nil, ErrDegenerateRoute
	}
	return &Route{
		points: append([]geom.Coord(nil), points...),
		cum:    cum,
		length: length,
	}, nil
}

// Position returns the point at the given progress along the route.
// Progress outside [0, 1] is clamped, so overshooting the final tick of
// movement still lands exactly on the endpoint.
func (r *Route) Position(progress float64) geom.Coord {
	if progress <= 0 {
		return r.points[0]
	}
	if progress >= 1 {
		return r.points[len(r.points)-1]
	}
	d := progress * r.length
	// First i with cum[i] >= d; i >= 1 because cum[0] = 0 < d.
	i := sort.SearchFloat64s(r.cum, d)
	seg := r.cum[i] - r.cum[i-1]
	if seg == 0 {
		return r.points[i]
	}
	return collision.Lerp(r.points[i-1], r.points[i], (d-r.cum[i-1])/seg)
}

// Length returns the total arc length of the route.
func (r *Route) Length() float64 {
	return r.length
}

// Points returns a copy of the route's polyline.
func (r *Route) Points() []geom.Coord {
	return append([]geom.Coord(nil), r.points...)
}
