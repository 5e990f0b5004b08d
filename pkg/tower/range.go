package tower

import (
	"sort"

	"github.com/jbeda/geom"

	"across/pkg/collision"
)

// Shape discriminates the range variants.
type Shape int

const (
	// ShapeCircle covers a full disc around the tower.
	ShapeCircle Shape = iota

	// ShapeSector covers an angular wedge of the disc.
	ShapeSector
)

// Range is the area a tower covers. Direction and FOV are meaningful for
// sectors only.
type Range struct {
	Shape     Shape
	Centre    geom.Coord
	Radius    float64
	Direction float64
	FOV       float64
}

// CircleRange builds a full-disc range.
func CircleRange(centre geom.Coord, radius float64) Range {
	return Range{Shape: ShapeCircle, Centre: centre, Radius: radius}
}

// SectorRange builds a wedge range facing direction and spanning fov
// radians.
func SectorRange(centre geom.Coord, radius, direction, fov float64) Range {
	return Range{Shape: ShapeSector, Centre: centre, Radius: radius, Direction: direction, FOV: fov}
}

// Contains reports whether p is inside the range.
func (r Range) Contains(p geom.Coord) bool {
	if r.Shape == ShapeSector {
		return collision.PointSector(r.Centre, r.Radius, r.Direction, r.FOV, p)
	}
	return collision.PointCircle(r.Centre, r.Radius, p)
}

// LineIntersections returns where segment a-b crosses the range boundary.
func (r Range) LineIntersections(a, b geom.Coord) []geom.Coord {
	if r.Shape == ShapeSector {
		return collision.LineSector(r.Centre, r.Radius, r.Direction, r.FOV, a, b)
	}
	return collision.LineCircle(r.Centre, r.Radius, a, b).Points()
}

// VisibleArea returns the length of segment a-b that lies inside the
// range. The segment is cut at every candidate boundary crossing and each
// piece is classified by its midpoint; spurious cuts at non-crossings only
// split an inside (or outside) piece in two, which the sum absorbs.
func (r Range) VisibleArea(a, b geom.Coord) float64 {
	d := b.Minus(a)
	length := d.Magnitude()
	if length == 0 {
		return 0
	}

	cuts := []float64{0, 1}
	for _, p := range collision.LineCircle(r.Centre, r.Radius, a, b).Points() {
		cuts = append(cuts, segmentParam(a, d, length, p))
	}
	if r.Shape == ShapeSector {
		// Cut at the straight wedge edges too. These come straight from
		// LineLine rather than LineIntersections: the two-edge tie-break
		// there can drop a real arc crossing, which is fine for reporting
		// boundary points but would misclassify a piece here.
		half := r.FOV / 2
		for _, edge := range []float64{r.Direction - half, r.Direction + half} {
			tip := r.Centre.Plus(collision.FromPolar(edge, r.Radius))
			if p, ok := collision.LineLine(r.Centre, tip, a, b); ok {
				cuts = append(cuts, segmentParam(a, d, length, p))
			}
		}
	}
	sort.Float64s(cuts)

	var visible float64
	for i := 1; i < len(cuts); i++ {
		lo, hi := cuts[i-1], cuts[i]
		if hi <= lo {
			continue
		}
		mid := collision.Lerp(a, b, (lo+hi)/2)
		if r.Contains(mid) {
			visible += (hi - lo) * length
		}
	}
	return visible
}

// Bounds returns the axis-aligned bounding box of the range's disc. For
// sectors this is conservative; the spatial index only needs a superset.
func (r Range) Bounds() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: r.Centre.X - r.Radius, Y: r.Centre.Y - r.Radius},
		Max: geom.Coord{X: r.Centre.X + r.Radius, Y: r.Centre.Y + r.Radius},
	}
}

// segmentParam projects p onto the segment a + t·d and returns t.
func segmentParam(a, d geom.Coord, length float64, p geom.Coord) float64 {
	v := p.Minus(a)
	return (v.X*d.X + v.Y*d.Y) / (length * length)
}
