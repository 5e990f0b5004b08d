package collision

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func TestAngle(t *testing.T) {
	tests := []struct {
		v    geom.Coord
		want float64
	}{
		{geom.Coord{X: 1, Y: 0}, 0},
		{geom.Coord{X: 0, Y: 1}, math.Pi / 2},
		{geom.Coord{X: -1, Y: 0}, math.Pi},
		{geom.Coord{X: 0, Y: -1}, -math.Pi / 2},
		{geom.Coord{X: 1, Y: 1}, math.Pi / 4},
	}
	for _, tt := range tests {
		if got := Angle(tt.v); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Angle(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestFromPolarRoundTrip(t *testing.T) {
	for _, angle := range []float64{0, 1, -2, math.Pi / 3, 3} {
		v := FromPolar(angle, 7)
		if got := Angle(v); math.Abs(got-angle) > 1e-12 {
			t.Errorf("Angle(FromPolar(%v, 7)) = %v", angle, got)
		}
		if got := v.Magnitude(); math.Abs(got-7) > 1e-12 {
			t.Errorf("FromPolar(%v, 7) magnitude = %v", angle, got)
		}
	}
}

func TestSqrDistance(t *testing.T) {
	got := SqrDistance(geom.Coord{X: 1, Y: 2}, geom.Coord{X: 4, Y: 6})
	if got != 25 {
		t.Fatalf("SqrDistance = %v, want 25", got)
	}
}

func TestLerp(t *testing.T) {
	p := geom.Coord{X: 0, Y: 10}
	q := geom.Coord{X: 20, Y: 0}
	tests := []struct {
		t    float64
		want geom.Coord
	}{
		{0, p},
		{1, q},
		{0.5, geom.Coord{X: 10, Y: 5}},
	}
	for _, tt := range tests {
		if got := Lerp(p, q, tt.t); got != tt.want {
			t.Errorf("Lerp(t=%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestShortestAngleDistance(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"quarter turn left", 0, math.Pi / 2, math.Pi / 2},
		{"quarter turn right", 0, -math.Pi / 2, -math.Pi / 2},
		{"wraps instead of going the long way", 0, 3 * math.Pi / 2, -math.Pi / 2},
		{"across the discontinuity", math.Pi - 0.1, -math.Pi + 0.1, 0.2},
		{"no turn", 1.3, 1.3, 0},
		{"half turn resolves to pi", 0, math.Pi, math.Pi},
		{"half turn from either side", math.Pi, 0, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortestAngleDistance(tt.from, tt.to)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("ShortestAngleDistance(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestShortestAngleDistanceAntisymmetric(t *testing.T) {
	for _, pair := range [][2]float64{{0.3, 2.1}, {-1, 2}, {3, -3}} {
		a := ShortestAngleDistance(pair[0], pair[1])
		b := ShortestAngleDistance(pair[1], pair[0])
		if math.Abs(a+b) > 1e-12 && math.Abs(math.Abs(a)-math.Pi) > 1e-12 {
			t.Errorf("SAD(%v,%v)=%v and SAD(%v,%v)=%v are not opposite",
				pair[0], pair[1], a, pair[1], pair[0], b)
		}
	}
}
