// Package level loads playing-field definitions: waypoint positions,
// their connections and the spawn/goal designations.
//
// Levels are GeoJSON FeatureCollections. Point features are waypoints in
// file order, with optional boolean properties "spawn" and "goal".
// LineString features declare connections through integer "from" and "to"
// properties referencing waypoint order; every connection is walkable in
// both directions.
package level

import (
	"errors"
	"fmt"
	"os"

	"github.com/jbeda/geom"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Field dimensions in pixels.
const (
	FieldWidth  = 1920.0
	FieldHeight = 1080.0
)

// ErrInvalidLevel is returned when a level file parses as GeoJSON but
// does not describe a playable field.
var ErrInvalidLevel = errors.New("invalid level")

// Level is a parsed playing field.
type Level struct {
	Positions   []geom.Coord
	Connections [][2]int
	Start, End  int
	Bounds      geom.Rect
}

// Load reads and parses the level file at path.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

// Parse decodes a GeoJSON level definition.
func Parse(data []byte) (*Level, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}

	lv := &Level{
		Start:  -1,
		End:    -1,
		Bounds: fieldBounds(),
	}
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Point:
			idx := len(lv.Positions)
			lv.Positions = append(lv.Positions, geom.Coord{X: g[0], Y: g[1]})
			if f.Properties.MustBool("spawn", false) {
				if lv.Start >= 0 {
					return nil, fmt.Errorf("%w: more than one spawn waypoint", ErrInvalidLevel)
				}
				lv.Start = idx
			}
			if f.Properties.MustBool("goal", false) {
				if lv.End >= 0 {
					return nil, fmt.Errorf("%w: more than one goal waypoint", ErrInvalidLevel)
				}
				lv.End = idx
			}
		case orb.LineString:
			from := f.Properties.MustInt("from", -1)
			to := f.Properties.MustInt("to", -1)
			lv.Connections = append(lv.Connections, [2]int{from, to}, [2]int{to, from})
		}
	}

	if len(lv.Positions) < 2 {
		return nil, fmt.Errorf("%w: needs at least 2 waypoints, got %d", ErrInvalidLevel, len(lv.Positions))
	}
	if lv.Start < 0 || lv.End < 0 {
		return nil, fmt.Errorf("%w: missing spawn or goal waypoint", ErrInvalidLevel)
	}
	for _, c := range lv.Connections {
		if c[0] < 0 || c[0] >= len(lv.Positions) || c[1] < 0 || c[1] >= len(lv.Positions) {
			return nil, fmt.Errorf("%w: connection %v out of range", ErrInvalidLevel, c)
		}
	}
	return lv, nil
}

// Default returns the built-in five-waypoint field.
func Default() *Level {
	pairs := [][2]int{
		{1, 3}, {0, 2}, {1, 2}, {0, 4}, {1, 4}, {4, 2}, {4, 3},
	}
	conns := make([][2]int, 0, 2*len(pairs))
	for _, p := range pairs {
		conns = append(conns, p, [2]int{p[1], p[0]})
	}
	return &Level{
		Positions: []geom.Coord{
			{X: 210, Y: 10},
			{X: 700, Y: 100},
			{X: 350, Y: 200},
			{X: 1000, Y: 1000},
			{X: 370, Y: 800},
		},
		Connections: conns,
		Start:       0,
		End:         1,
		Bounds:      fieldBounds(),
	}
}

func fieldBounds() geom.Rect {
	return geom.Rect{Max: geom.Coord{X: FieldWidth, Y: FieldHeight}}
}
