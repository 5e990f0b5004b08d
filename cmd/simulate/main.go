package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jbeda/geom"

	"across/pkg/level"
	"across/pkg/sim"
	"across/pkg/tower"
)

// placement is one parsed -place flag: "kind:x,y[,direction]".
type placement struct {
	kind      tower.Kind
	pos       geom.Coord
	direction float64
}

// placements implements flag.Value so -place can repeat.
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
	ticks := flag.Int("ticks", 100000, "Maximum ticks to simulate")
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
		log.Printf("Placed tower at (%.0f, %.0f), route cost now %.1f", pl.pos.X, pl.pos.Y, session.Web().Cost())
	}

	round := session.RoundNumber()
	for i := 0; i < *ticks && !session.GameOver(); i++ {
		session.Tick()
		if r := session.RoundNumber(); r != round {
			log.Printf("Round %d cleared at tick %d: score %d, lives %d, money %d",
				round, i+1, session.Score(), session.Lives(), session.Money())
			round = r
		}
	}

	fmt.Printf("rounds=%d score=%d lives=%d money=%d\n",
		session.RoundNumber(), session.Score(), session.Lives(), session.Money())
	if session.GameOver() {
		fmt.Println("result=lost")
		os.Exit(1)
	}
	fmt.Println("result=survived")
}
