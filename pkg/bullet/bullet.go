// Package bullet implements the two projectile behaviours towers fire.
package bullet

import (
	"github.com/jbeda/geom"

	"across/pkg/collision"
	"across/pkg/enemy"
	"across/pkg/entity"
)

// Kind discriminates the bullet variants.
type Kind int

const (
	// KindProjectile travels in a straight line until it hits an enemy or
	// leaves the field.
	KindProjectile Kind = iota

	// KindLightning is an instantaneous beam that damages every enemy it
	// crosses, then disappears.
	KindLightning
)

const (
	projectileSpeed  = 3.0
	projectileRadius = 10.0
	damage           = 1.0
)

// Bullet is a fired shot. Projectiles carry a position and velocity;
// lightning carries the beam's two endpoints.
type Bullet struct {
	kind Kind
	pos  geom.Coord
	vel  geom.Coord
	end  geom.Coord // lightning only
}

// NewProjectile fires a projectile from `from` toward `target` at the
// fixed projectile speed. The aim is frozen at launch; it does not track.
func NewProjectile(from, target geom.Coord) *Bullet {
	return &Bullet{
		kind: KindProjectile,
		pos:  from,
		vel:  target.Minus(from).Unit().Times(projectileSpeed),
	}
}

// NewLightning fires a beam from `from` to `to`.
func NewLightning(from, to geom.Coord) *Bullet {
	return &Bullet{kind: KindLightning, pos: from, end: to}
}

// Kind returns the bullet variant.
func (b *Bullet) Kind() Kind {
	return b.kind
}

// Position returns the projectile's position, or the beam origin.
func (b *Bullet) Position() geom.Coord {
	return b.pos
}

// Beam returns the lightning beam's endpoints.
func (b *Bullet) Beam() (from, to geom.Coord) {
	return b.pos, b.end
}

// Update advances the bullet one tick, applying damage to enemies it hits.
// A projectile dies on its first hit or when it leaves bounds; lightning
// always dies, having damaged everything on the beam.
func (b *Bullet) Update(enemies []*enemy.Enemy, bounds geom.Rect) entity.Updated[*Bullet] {
	if b.kind == KindLightning {
		for _, e := range enemies {
			if collision.LineCircle(e.Position(), e.Radius(), b.pos, b.end).Count > 0 {
				e.Damage(damage)
			}
		}
		return entity.Dead(b)
	}

	b.pos = b.pos.Plus(b.vel)
	for _, e := range enemies {
		if e.Collides(b.pos, projectileRadius) {
			e.Damage(damage)
			return entity.Dead(b)
		}
	}
	if b.pos.X < bounds.Min.X || b.pos.X > bounds.Max.X ||
		b.pos.Y < bounds.Min.Y || b.pos.Y > bounds.Max.Y {
		return entity.Dead(b)
	}
	return entity.Alive(b)
}
