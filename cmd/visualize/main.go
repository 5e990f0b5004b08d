// Command visualize renders a level's waypoint web, the current best
// route and any placed towers to an SVG file for debugging.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/jbeda/geom"

	"across/pkg/collision"
	"across/pkg/level"
	"across/pkg/sim"
	"across/pkg/tower"
)

type placement struct {
	kind      tower.Kind
	pos       geom.Coord
	direction float64
}

type placements []placement

func (p *placements) String() string {
	return fmt.Sprintf("%d placements", len(*p))
}

func (p *placements) Set(s string) error {
	kindStr, rest, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("expected kind:x,y[,direction], got %q", s)
	}
	var pl placement
	switch kindStr {
	case "cannon":
		pl.kind = tower.KindCannon
	case "arc":
		pl.kind = tower.KindArc
	default:
		return fmt.Errorf("unknown tower kind %q", kindStr)
	}
	if n, err := fmt.Sscanf(rest, "%f,%f,%f", &pl.pos.X, &pl.pos.Y, &pl.direction); err != nil && n < 2 {
		return fmt.Errorf("expected x,y[,direction], got %q", rest)
	}
	*p = append(*p, pl)
	return nil
}

func main() {
	levelPath := flag.String("level", "", "Path to GeoJSON level file (empty = built-in level)")
	output := flag.String("o", "field.svg", "Output SVG file path")
	var places placements
	flag.Var(&places, "place", "Tower placement kind:x,y[,direction], repeatable")
	flag.Parse()

	lv := level.Default()
	if *levelPath != "" {
		var err error
		lv, err = level.Load(*levelPath)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
	}

	session, err := sim.NewSession(lv)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	for _, pl := range places {
		if err := session.PlaceTower(pl.kind, pl.pos, pl.direction); err != nil {
			log.Fatalf("Failed to place tower at %v: %v", pl.pos, err)
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	w := bufio.NewWriter(f)
	render(&svg{w: w}, session, lv)
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to write SVG: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close output: %v", err)
	}
	log.Printf("Wrote %s: route %.1f long, cost %.1f, %d towers",
		*output, session.Route().Length(), session.Web().Cost(), len(session.Towers()))
}

func render(s *svg, session *sim.Session, lv *level.Level) {
	s.start(session.Bounds())

	// Web edges.
	g := session.Web().Graph()
	for e := 0; e < g.NumEdges; e++ {
		s.line(g.Pos[g.Tail[e]], g.Pos[g.Head[e]], "stroke='#bbb' stroke-width='2'")
	}

	// Tower ranges, then the towers themselves.
	for _, tw := range session.Towers() {
		r := tw.Range()
		if r.Shape == tower.ShapeSector {
			s.wedge(r, "fill='#e8433333' stroke='#e84333'")
		} else {
			s.circle(r.Centre, r.Radius, "fill='#e8433333' stroke='#e84333'")
		}
		s.circle(tw.Position(), 6, "fill='#e84333'")
	}

	// Best route on top.
	s.polyline(session.Route().Points(), "fill='none' stroke='#2a6fdb' stroke-width='4'")

	// Waypoints, spawn and goal.
	for i, p := range lv.Positions {
		switch i {
		case lv.Start:
			s.circle(p, 10, "fill='#3cab4b'")
		case lv.End:
			s.circle(p, 10, "fill='#d4a017'")
		default:
			s.circle(p, 6, "fill='#555'")
		}
	}

	s.end()
}

// svg is a minimal element writer; errors surface at the final Flush.
type svg struct {
	w *bufio.Writer
}

func (s *svg) printf(format string, a ...interface{}) {
	fmt.Fprintf(s.w, format, a...)
}

func (s *svg) start(viewBox geom.Rect) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
}

func (s *svg) end() {
	s.printf("</svg>\n")
}

func (s *svg) line(p1, p2 geom.Coord, attrs string) {
	s.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' %s/>\n", p1.X, p1.Y, p2.X, p2.Y, attrs)
}

func (s *svg) circle(c geom.Coord, r float64, attrs string) {
	s.printf("<circle cx='%f' cy='%f' r='%f' %s/>\n", c.X, c.Y, r, attrs)
}

func (s *svg) polyline(pts []geom.Coord, attrs string) {
	s.printf("<polyline points='")
	for i, p := range pts {
		if i > 0 {
			s.printf(" ")
		}
		s.printf("%f,%f", p.X, p.Y)
	}
	s.printf("' %s/>\n", attrs)
}

// wedge draws a sector as apex, arc, and back to the apex.
func (s *svg) wedge(r tower.Range, attrs string) {
	half := r.FOV / 2
	p1 := r.Centre.Plus(collision.FromPolar(r.Direction-half, r.Radius))
	p2 := r.Centre.Plus(collision.FromPolar(r.Direction+half, r.Radius))
	largeArc := "0"
	if r.FOV > math.Pi {
		largeArc = "1"
	}
	s.printf("<path d='M%f,%f L%f,%f A%f,%f 0 %s,1 %f,%f Z' %s/>\n",
		r.Centre.X, r.Centre.Y, p1.X, p1.Y, r.Radius, r.Radius, largeArc, p2.X, p2.Y, attrs)
}
