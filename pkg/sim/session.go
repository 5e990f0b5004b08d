// Package sim runs the game: rounds, tower placement, combat and the
// pathfinding reweighting that placed towers cause.
package sim

import (
	"errors"
	"fmt"

	"github.com/jbeda/geom"
	"github.com/tidwall/rtree"

	"across/pkg/bullet"
	"across/pkg/enemy"
	"across/pkg/graph"
	"across/pkg/level"
	"across/pkg/routing"
	"across/pkg/tower"
)

const (
	startLives = 5
	startMoney = 30
	killReward = 2

	spawnInterval = 60 // ticks between spawns within a round

	// How much a unit of tower-covered route length costs on top of its
	// plain distance. High enough that enemies detour around coverage
	// when a clear path exists, low enough that they still walk through
	// when every path is covered.
	obstructionFactor = 5.0
)

var (
	// ErrInsufficientFunds is returned when a tower costs more than the
	// player has.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrOutOfBounds is returned when a tower is placed outside the field.
	ErrOutOfBounds = errors.New("position out of bounds")
)

type round struct {
	number  int
	toSpawn int
	timer   int
}

func newRound(number int) round {
	return round{
		number:  number,
		toSpawn: 8 + 2*number,
		timer:   spawnInterval,
	}
}

// Session is one running game. It is not safe for concurrent use; callers
// serialize Tick against every other method.
type Session struct {
	lv     *level.Level
	web    *routing.Web
	bounds geom.Rect

	towers []*tower.Tower
	index  rtree.RTree

	enemies []*enemy.Enemy
	bullets []*bullet.Bullet

	rnd      round
	lives    int
	score    int
	money    int
	gameOver bool
}

// NewSession starts a fresh game on the given level.
func NewSession(lv *level.Level) (*Session, error) {
	web, err := routing.NewWeb(lv.Positions, lv.Connections, lv.Start, lv.End, graph.Euclidean)
	if err != nil {
		return nil, fmt.Errorf("build web: %w", err)
	}
	return &Session{
		lv:     lv,
		web:    web,
		bounds: lv.Bounds,
		rnd:    newRound(1),
		lives:  startLives,
		money:  startMoney,
	}, nil
}

// Reset starts the game over on the same level, clearing towers, enemies
// and the score.
func (s *Session) Reset() error {
	fresh, err := NewSession(s.lv)
	if err != nil {
		return err
	}
	*s = *fresh
	return nil
}

// PlaceTower buys and places a tower. On success the pathfinding weights
// are recomputed with the new coverage, which can reroute future enemies;
// enemies already walking keep their route.
func (s *Session) PlaceTower(kind tower.Kind, pos geom.Coord, direction float64) error {
	if pos.X < s.bounds.Min.X || pos.X > s.bounds.Max.X ||
		pos.Y < s.bounds.Min.Y || pos.Y > s.bounds.Max.Y {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	price := tower.Price(kind)
	if s.money < price {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, s.money, price)
	}

	tw := tower.New(kind, pos, direction)
	s.money -= price
	s.towers = append(s.towers, tw)
	b := tw.Range().Bounds()
	s.index.Insert([2]float64{b.Min.X, b.Min.Y}, [2]float64{b.Max.X, b.Max.Y}, tw)

	return s.web.RecalculateWeights(s.obstructedWeight)
}

// obstructedWeight prices an edge as its length plus a penalty for every
// stretch of it inside tower coverage. Only towers whose bounding box
// touches the segment's are examined.
func (s *Session) obstructedWeight(a, b geom.Coord) float64 {
	w := a.DistanceFrom(b)
	lo := [2]float64{min(a.X, b.X), min(a.Y, b.Y)}
	hi := [2]float64{max(a.X, b.X), max(a.Y, b.Y)}
	s.index.Search(lo, hi, func(_, _ [2]float64, data interface{}) bool {
		tw := data.(*tower.Tower)
		w += obstructionFactor * tw.Range().VisibleArea(a, b)
		return true
	})
	return w
}

// Tick advances the game one step: spawn, enemy movement and accounting,
// tower fire, bullet flight, round advance. A no-op once the game is over.
func (s *Session) Tick() {
	if s.gameOver {
		return
	}

	if s.rnd.toSpawn > 0 {
		s.rnd.timer--
		if s.rnd.timer <= 0 {
			s.enemies = append(s.enemies, enemy.Spawn(s.web.Route()))
			s.rnd.toSpawn--
			s.rnd.timer = spawnInterval
		}
	}

	survivors := s.enemies[:0]
	for _, e := range s.enemies {
		u := e.Update()
		if u.Alive() {
			survivors = append(survivors, u.Value())
			continue
		}
		if u.Value().Escaped() {
			s.lives--
		} else {
			s.score++
			s.money += killReward
		}
	}
	s.enemies = survivors
	if s.lives <= 0 {
		s.gameOver = true
		return
	}

	for _, tw := range s.towers {
		if b := tw.Update(s.enemies); b != nil {
			s.bullets = append(s.bullets, b)
		}
	}

	flying := s.bullets[:0]
	for _, b := range s.bullets {
		if u := b.Update(s.enemies, s.bounds); u.Alive() {
			flying = append(flying, u.Value())
		}
	}
	s.bullets = flying

	if s.rnd.toSpawn == 0 && len(s.enemies) == 0 {
		s.rnd = newRound(s.rnd.number + 1)
	}
}

// Lives returns the lives remaining.
func (s *Session) Lives() int { return s.lives }

// Score returns the kill count.
func (s *Session) Score() int { return s.score }

// Money returns the player's balance.
func (s *Session) Money() int { return s.money }

// RoundNumber returns the current round, starting at 1.
func (s *Session) RoundNumber() int { return s.rnd.number }

// GameOver reports whether the player has run out of lives.
func (s *Session) GameOver() bool { return s.gameOver }

// Enemies returns the live enemies, in spawn order.
func (s *Session) Enemies() []*enemy.Enemy { return s.enemies }

// Bullets returns the bullets in flight.
func (s *Session) Bullets() []*bullet.Bullet { return s.bullets }

// Towers returns the placed towers, in placement order.
func (s *Session) Towers() []*tower.Tower { return s.towers }

// Route returns the route newly spawned enemies will take.
func (s *Session) Route() *routing.Route { return s.web.Route() }

// Web returns the waypoint web, for drawing and inspection.
func (s *Session) Web() *routing.Web { return s.web }

// Bounds returns the playing field rectangle.
func (s *Session) Bounds() geom.Rect { return s.bounds }
