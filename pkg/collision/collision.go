// Package collision provides the 2D intersection tests shared by combat
// resolution and pathfinding edge obstruction: point/line against circles
// and sectors, segment/segment intersection, and the quadratic solver
// backing the circle tests.
//
// All functions are pure and operate on geom.Coord points in screen space.
package collision

import (
	"math"

	"github.com/jbeda/geom"
)

// QuadraticSolution classifies the real roots of ax²+bx+c = 0.
type QuadraticSolution struct {
	Count int     // 0, 1 (repeated root) or 2
	X1    float64 // the repeated root, or the (-b+√D)/2a root
	X2    float64 // the (-b-√D)/2a root; meaningless unless Count == 2
}

// Quadratic solves ax²+bx+c = 0 over the reals. The discriminant is
// compared to zero exactly, not within an epsilon: a value a hair off a
// tangent counts as two near-identical roots, not one. Sharp edge, but a
// deliberate one — callers downstream dedupe coincident points anyway.
func Quadratic(a, b, c float64) QuadraticSolution {
	d := b*b - 4*a*c
	switch {
	case d > 0:
		sqrtD := math.Sqrt(d)
		return QuadraticSolution{
			Count: 2,
			X1:    (-b + sqrtD) / (2 * a),
			X2:    (-b - sqrtD) / (2 * a),
		}
	case d == 0:
		return QuadraticSolution{Count: 1, X1: -b / (2 * a)}
	default:
		return QuadraticSolution{Count: 0}
	}
}

// Roots returns the real roots as a slice in solver order.
func (q QuadraticSolution) Roots() []float64 {
	switch q.Count {
	case 1:
		return []float64{q.X1}
	case 2:
		return []float64{q.X1, q.X2}
	}
	return nil
}

// LineCircleCollision holds where a segment crosses a circle's boundary:
// nowhere, once (tangent or one endpoint inside) or twice (secant).
type LineCircleCollision struct {
	Count  int
	P1, P2 geom.Coord
}

// Points returns the crossing points as a slice of length Count.
func (c LineCircleCollision) Points() []geom.Coord {
	switch c.Count {
	case 1:
		return []geom.Coord{c.P1}
	case 2:
		return []geom.Coord{c.P1, c.P2}
	}
	return nil
}

// PointCircle reports whether p lies inside or on the circle.
func PointCircle(centre geom.Coord, radius float64, p geom.Coord) bool {
	return SqrDistance(p, centre) <= radius*radius
}

// LineCircle returns where segment a-b crosses the boundary of the circle.
// These are boundary crossings only: a segment lying entirely inside the
// circle reports no collision. The result never holds more than two points.
func LineCircle(centre geom.Coord, radius float64, a, b geom.Coord) LineCircleCollision {
	m := (b.Y - a.Y) / (b.X - a.X)
	if math.IsInf(m, 0) || math.IsNaN(m) {
		// Vertical or zero-length segment: the slope form breaks down,
		// solve for y at the fixed x instead.
		return verticalLineCircle(centre, radius, a, b)
	}

	// Substitute y = mx + k into (x-cx)² + (y-cy)² = r² to get a
	// quadratic in x, then keep roots within the segment's x-range.
	k := b.Y - m*b.X
	dy := k - centre.Y
	sol := Quadratic(
		1+m*m,
		2*(m*dy-centre.X),
		centre.X*centre.X+dy*dy-radius*radius,
	)
	lo, hi := math.Min(a.X, b.X), math.Max(a.X, b.X)
	var pts []geom.Coord
	for _, x := range sol.Roots() {
		if x >= lo && x <= hi {
			pts = append(pts, geom.Coord{X: x, Y: m*x + k})
		}
	}
	return collisionFromPoints(pts)
}

func verticalLineCircle(centre geom.Coord, radius float64, a, b geom.Coord) LineCircleCollision {
	dx := a.X - centre.X
	dySq := radius*radius - dx*dx
	if dySq < 0 {
		return LineCircleCollision{}
	}
	dy := math.Sqrt(dySq)
	lo, hi := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	var pts []geom.Coord
	for _, y := range []float64{centre.Y + dy, centre.Y - dy} {
		if y >= lo && y <= hi {
			pts = append(pts, geom.Coord{X: a.X, Y: y})
		}
	}
	if dySq == 0 && len(pts) == 2 {
		// Tangent: both candidate ys collapse to the same point.
		pts = pts[:1]
	}
	return collisionFromPoints(pts)
}

func collisionFromPoints(pts []geom.Coord) LineCircleCollision {
	switch len(pts) {
	case 1:
		return LineCircleCollision{Count: 1, P1: pts[0]}
	case 2:
		return LineCircleCollision{Count: 2, P1: pts[0], P2: pts[1]}
	}
	return LineCircleCollision{}
}

// LineLine returns the intersection of segments a1-b1 and a2-b2, if any.
// Parallel, collinear and zero-length inputs report no intersection: the
// determinant short-circuits before any division, so no NaN can escape
// into gameplay state.
func LineLine(a1, b1, a2, b2 geom.Coord) (geom.Coord, bool) {
	d1 := b1.Minus(a1)
	d2 := b2.Minus(a2)
	det := d2.X*d1.Y - d1.X*d2.Y
	if det == 0 {
		return geom.Coord{}, false
	}
	// a1 + t·d1 = a2 + s·d2, solved for t and s by Cramer's rule; both
	// parameters must land within their segments.
	rx := a2.X - a1.X
	ry := a2.Y - a1.Y
	t := (d2.X*ry - d2.Y*rx) / det
	s := (d1.X*ry - d1.Y*rx) / det
	if t < 0 || t > 1 || s < 0 || s > 1 {
		return geom.Coord{}, false
	}
	return a1.Plus(d1.Times(t)), true
}

// PointSector reports whether p lies inside the sector centred at centre
// with the given radius, facing direction and spanning fov radians.
func PointSector(centre geom.Coord, radius, direction, fov float64, p geom.Coord) bool {
	if !PointCircle(centre, radius, p) {
		return false
	}
	return math.Abs(ShortestAngleDistance(direction, Angle(p.Minus(centre)))) <= fov/2
}

// LineSector returns where segment a-b crosses the boundary of a sector:
// arc crossings that fall inside the angular wedge, plus crossings of the
// two straight wedge edges. When the segment crosses both straight edges,
// those two points alone are the result — a segment grazing the arc as
// well would otherwise report three points for one convex shape. At most
// two points are returned.
func LineSector(centre geom.Coord, radius, direction, fov float64, a, b geom.Coord) []geom.Coord {
	half := fov / 2
	e1, ok1 := LineLine(centre, centre.Plus(FromPolar(direction-half, radius)), a, b)
	e2, ok2 := LineLine(centre, centre.Plus(FromPolar(direction+half, radius)), a, b)
	if ok1 && ok2 {
		return []geom.Coord{e1, e2}
	}

	var pts []geom.Coord
	for _, p := range LineCircle(centre, radius, a, b).Points() {
		if math.Abs(ShortestAngleDistance(direction, Angle(p.Minus(centre)))) <= half {
			pts = append(pts, p)
		}
	}
	if ok1 {
		pts = appendPoint(pts, e1)
	}
	if ok2 {
		pts = appendPoint(pts, e2)
	}
	if len(pts) > 2 {
		pts = pts[:2]
	}
	return pts
}

// appendPoint adds p unless it is already present, so a segment touching
// the corner where a wedge edge meets the arc reports that point once.
func appendPoint(pts []geom.Coord, p geom.Coord) []geom.Coord {
	for _, q := range pts {
		if p == q {
			return pts
		}
	}
	return append(pts, p)
}
