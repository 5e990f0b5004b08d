package routing

import (
	"errors"
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func TestNewRouteDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []geom.Coord
	}{
		{"no points", nil},
		{"single point", []geom.Coord{{X: 1, Y: 1}}},
		{"zero length", []geom.Coord{{X: 1, Y: 1}, {X: 1, Y: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoute(tt.points)
			if !errors.Is(err, ErrDegenerateRoute) {
				t.Fatalf("NewRoute error = %v, want ErrDegenerateRoute", err)
			}
		})
	}
}

func TestRoutePosition(t *testing.T) {
	// L-shape: 30 along x, then 10 up. Total length 40.
	r, err := NewRoute([]geom.Coord{
		{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 10},
	})
	if err != nil {
		t.Fatalf("NewRoute: %v", err)
	}
	if r.Length() != 40 {
		t.Fatalf("Length() = %v, want 40", r.Length())
	}

	tests := []struct {
		progress float64
		want     geom.Coord
	}{
		{0, geom.Coord{X: 0, Y: 0}},
		{0.25, geom.Coord{X: 10, Y: 0}},
		{0.75, geom.Coord{X: 30, Y: 0}}, // the corner, 30 of 40 along
		{0.875, geom.Coord{X: 30, Y: 5}},
		{1, geom.Coord{X: 30, Y: 10}},
		{-0.5, geom.Coord{X: 0, Y: 0}},  // clamped low
		{1.5, geom.Coord{X: 30, Y: 10}}, // clamped high
	}
	for _, tt := range tests {
		got := r.Position(tt.progress)
		if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
			t.Errorf("Position(%v) = %v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestRoutePositionMonotonic(t *testing.T) {
	r, err := NewRoute([]geom.Coord{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 20}, {X: 9, Y: 23},
	})
	if err != nil {
		t.Fatalf("NewRoute: %v", err)
	}
	// Arc lengths of the interior corners; a step straddling one covers
	// a chord shorter than the arc, so equality only holds for steps
	// that stay within a single segment.
	corners := []float64{5, 25}
	const steps = 200
	step := r.Length() / steps
	prev := r.Position(0)
	for i := 1; i <= steps; i++ {
		p := r.Position(float64(i) / steps)
		d := prev.DistanceFrom(p)
		if d > step+1e-9 {
			t.Fatalf("step %d covered %v, overshooting the %v arc step", i, d, step)
		}
		if !straddlesCorner(corners, float64(i-1)*step, float64(i)*step) && math.Abs(d-step) > 1e-9 {
			t.Fatalf("step %d covered %v within one segment, want %v", i, d, step)
		}
		prev = p
	}
}

func straddlesCorner(corners []float64, lo, hi float64) bool {
	for _, c := range corners {
		if c > lo && c < hi {
			return true
		}
	}
	return false
}

func TestRoutePointsIsACopy(t *testing.T) {
	r, err := NewRoute([]geom.Coord{{X: 0, Y: 0}, {X: 10, Y: 0}})
	if err != nil {
		t.Fatalf("NewRoute: %v", err)
	}
	pts := r.Points()
	pts[0] = geom.Coord{X: 99, Y: 99}
	if got := r.Position(0); got != (geom.Coord{X: 0, Y: 0}) {
		t.Fatalf("Position(0) = %v after mutating Points() copy", got)
	}
}
