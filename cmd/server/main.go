package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"across/pkg/api"
	"across/pkg/level"
	"across/pkg/save"
	"across/pkg/sim"
)

func main() {
	levelPath := flag.String("level", "", "Path to GeoJSON level file (empty = built-in level)")
	port := flag.Int("port", 8080, "HTTP port")
	tickRate := flag.Int("tick-rate", 60, "Simulation ticks per second")
	savePath := flag.String("save", "scores.csv", "Path to the score save file")
	corsOrigin := flag.String("cors-origin", "", "CORS allowed origin (empty = same-origin)")
	flag.Parse()

	lv, err := loadLevel(*levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	log.Printf("Level: %d waypoints, %d connections", len(lv.Positions), len(lv.Connections))

	session, err := sim.NewSession(lv)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	log.Printf("Initial route: %.1f long", session.Route().Length())

	var mu sync.Mutex
	go tickLoop(&mu, session, *tickRate, *savePath)

	addr := fmt.Sprintf(":%d", *port)
	cfg := api.DefaultConfig(addr)
	cfg.CORSOrigin = *corsOrigin

	handlers := api.NewHandlers(&mu, session)
	srv := api.NewServer(cfg, handlers)

	if err := api.ListenAndServe(srv); err != nil {
		log.Printf("Server stopped: %v", err)
		os.Exit(1)
	}
}

func loadLevel(path string) (*level.Level, error) {
	if path == "" {
		log.Println("Using built-in level")
		return level.Default(), nil
	}
	log.Printf("Loading level from %s...", path)
	return level.Load(path)
}

// tickLoop drives the simulation. On game over it records the score and
// starts a fresh game on the same level.
func tickLoop(mu *sync.Mutex, session *sim.Session, tickRate int, savePath string) {
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for range ticker.C {
		mu.Lock()
		session.Tick()
		if session.GameOver() {
			score := session.Score()
			if err := save.Append(savePath, save.Score{Date: time.Now(), Points: score}); err != nil {
				log.Printf("Failed to save score: %v", err)
			}
			log.Printf("Game over: %d kills, round %d. Restarting.", score, session.RoundNumber())
			if err := session.Reset(); err != nil {
				mu.Unlock()
				log.Fatalf("Failed to reset session: %v", err)
			}
		}
		mu.Unlock()
	}
}
