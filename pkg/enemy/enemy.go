// Package enemy implements the route-following agents the towers shoot at.
package enemy

import (
	"github.com/jbeda/geom"

	"across/pkg/collision"
	"across/pkg/entity"
	"across/pkg/routing"
)

// Base enemy stats, in progress-per-tick, hit points and pixels.
const (
	baseSpeed  = 0.0012
	baseHealth = 1.0
	baseRadius = 15.0
)

// Enemy walks a route from spawn to goal. It holds its own route snapshot:
// reweighting the web never moves an enemy already in flight.
type Enemy struct {
	route    *routing.Route
	progress float64
	speed    float64
	health   float64
	radius   float64
}

// Spawn creates an enemy at the start of route with the base stats.
func Spawn(route *routing.Route) *Enemy {
	return &Enemy{
		route:  route,
		speed:  baseSpeed,
		health: baseHealth,
		radius: baseRadius,
	}
}

// Update advances the enemy one tick. The enemy is dead once its health is
// exhausted or it reaches the end of its route; Escaped tells the two
// apart.
func (e *Enemy) Update() entity.Updated[*Enemy] {
	e.progress += e.speed
	if e.health <= 0 || e.progress >= 1 {
		return entity.Dead(e)
	}
	return entity.Alive(e)
}

// Position returns the enemy's current location on its route.
func (e *Enemy) Position() geom.Coord {
	return e.route.Position(e.progress)
}

// Radius returns the enemy's hitbox radius.
func (e *Enemy) Radius() float64 {
	return e.radius
}

// Health returns the enemy's remaining health.
func (e *Enemy) Health() float64 {
	return e.health
}

// Damage reduces health by d, clamping at zero.
func (e *Enemy) Damage(d float64) {
	e.health -= d
	if e.health < 0 {
		e.health = 0
	}
}

// Escaped reports whether the enemy reached the goal rather than dying to
// damage. Meaningful for a dead enemy; escape costs a life, a kill scores.
func (e *Enemy) Escaped() bool {
	return e.progress >= 1 && e.health > 0
}

// Collides reports whether a circle at p with radius r overlaps the
// enemy's hitbox.
func (e *Enemy) Collides(p geom.Coord, r float64) bool {
	sum := e.radius + r
	return collision.SqrDistance(e.Position(), p) <= sum*sum
}
