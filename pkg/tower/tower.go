// Package tower implements tower placement, targeting and firing, and the
// range geometry that obstructs enemy pathfinding.
package tower

import (
	"math"

	"github.com/jbeda/geom"

	"across/pkg/bullet"
	"across/pkg/enemy"
)

// Kind discriminates the tower variants.
type Kind int

const (
	// KindCannon covers a disc and fires travelling projectiles.
	KindCannon Kind = iota

	// KindArc covers a wedge and fires instantaneous lightning.
	KindArc
)

const (
	cannonRadius = 60.0
	cannonPrice  = 10

	arcRadius = 150.0
	arcFOV    = math.Pi / 2
	arcPrice  = 25

	cooldownTicks = 60
)

// Price returns the cost of placing a tower of the given kind.
func Price(kind Kind) int {
	if kind == KindArc {
		return arcPrice
	}
	return cannonPrice
}

// Tower is a placed tower. It fires at the first enemy in range whenever
// its cooldown allows.
type Tower struct {
	kind     Kind
	pos      geom.Coord
	rng      Range
	cooldown int
}

// New places a tower of the given kind at pos. Direction orients an arc
// tower's wedge and is ignored for cannons.
func New(kind Kind, pos geom.Coord, direction float64) *Tower {
	t := &Tower{kind: kind, pos: pos}
	if kind == KindArc {
		t.rng = SectorRange(pos, arcRadius, direction, arcFOV)
	} else {
		t.rng = CircleRange(pos, cannonRadius)
	}
	return t
}

// Kind returns the tower variant.
func (t *Tower) Kind() Kind {
	return t.kind
}

// Position returns where the tower stands.
func (t *Tower) Position() geom.Coord {
	return t.pos
}

// Range returns the tower's coverage area.
func (t *Tower) Range() Range {
	return t.rng
}

// Target returns the first enemy inside the tower's range, in spawn
// order, or nil when none is covered.
func (t *Tower) Target(enemies []*enemy.Enemy) *enemy.Enemy {
	for _, e := range enemies {
		if t.rng.Contains(e.Position()) {
			return e
		}
	}
	return nil
}

// Update advances the cooldown one tick and fires at the current target
// if ready. It returns the fired bullet, or nil when holding fire.
func (t *Tower) Update(enemies []*enemy.Enemy) *bullet.Bullet {
	if t.cooldown > 0 {
		t.cooldown--
		return nil
	}
	target := t.Target(enemies)
	if target == nil {
		return nil
	}
	t.cooldown = cooldownTicks
	if t.kind == KindArc {
		return bullet.NewLightning(t.pos, target.Position())
	}
	return bullet.NewProjectile(t.pos, target.Position())
}
