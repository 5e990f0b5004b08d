package collision

import (
	"math"

	"github.com/jbeda/geom"
)

// Angle returns the angle v makes with the positive x-axis, in radians.
// Counter-clockwise is positive; the result is in (-π, π].
func Angle(v geom.Coord) float64 {
	return math.Atan2(v.Y, v.X)
}

// FromPolar builds the vector with the given angle and length.
func FromPolar(angle, radius float64) geom.Coord {
	return geom.Coord{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

// SqrDistance returns the squared distance between p and q. Comparing it
// against a squared radius avoids the square root on the combat hot path.
func SqrDistance(p, q geom.Coord) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Lerp interpolates linearly from p to q: t = 0 yields p, t = 1 yields q.
func Lerp(p, q geom.Coord, t float64) geom.Coord {
	return p.Plus(q.Minus(p).Times(t))
}

// ShortestAngleDistance returns the signed delta that rotates angle `from`
// onto angle `to` by the shorter way, wrapped into (-π, π]. Swapping the
// arguments flips the sign, except for the exact half turn, which is π
// from either side.
func ShortestAngleDistance(from, to float64) float64 {
	d := math.Mod(to-from, 2*math.Pi)
	if d <= -math.Pi {
		d += 2 * math.Pi
	} else if d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}
