package bullet

import (
	"testing"

	"github.com/jbeda/geom"

	"across/pkg/enemy"
	"across/pkg/routing"
)

func fieldBounds() geom.Rect {
	return geom.Rect{Min: geom.Coord{}, Max: geom.Coord{X: 1920, Y: 1080}}
}

// enemyAt spawns a stationary-enough enemy whose route starts at pos.
func enemyAt(t *testing.T, pos geom.Coord) *enemy.Enemy {
	t.Helper()
	r, err := routing.NewRoute([]geom.Coord{pos, pos.Plus(geom.Coord{X: 0, Y: 1000})})
	if err != nil {
		t.Fatalf("NewRoute: %v", err)
	}
	return enemy.Spawn(r)
}

func TestProjectileFliesUntilHit(t *testing.T) {
	e := enemyAt(t, geom.Coord{})
	b := NewProjectile(geom.Coord{X: 0, Y: 30}, geom.Coord{})

	// Moves 3 per tick; contact at centre distance 25 (radii 15 + 10),
	// first reached at y = 24 on the second tick.
	u := b.Update([]*enemy.Enemy{e}, fieldBounds())
	if !u.Alive() {
		t.Fatal("projectile hit from 27 away")
	}
	u = b.Update([]*enemy.Enemy{e}, fieldBounds())
	if u.Alive() {
		t.Fatal("projectile still alive after contact")
	}
	if e.Health() != 0 {
		t.Fatalf("enemy health = %v, want 0", e.Health())
	}
}

func TestProjectileDespawnsOffBounds(t *testing.T) {
	b := NewProjectile(geom.Coord{X: 1, Y: 50}, geom.Coord{X: -100, Y: 50})
	u := b.Update(nil, fieldBounds())
	if u.Alive() {
		t.Fatal("projectile alive outside the field")
	}
}

func TestProjectileHitsOnlyOneEnemy(t *testing.T) {
	near := enemyAt(t, geom.Coord{X: 0, Y: 0})
	far := enemyAt(t, geom.Coord{X: 0, Y: -40})
	b := NewProjectile(geom.Coord{X: 0, Y: 24.5}, geom.Coord{})

	u := b.Update([]*enemy.Enemy{near, far}, fieldBounds())
	if u.Alive() {
		t.Fatal("projectile survived contact")
	}
	if near.Health() != 0 {
		t.Fatalf("near enemy health = %v, want 0", near.Health())
	}
	if far.Health() != 1 {
		t.Fatalf("far enemy health = %v, want untouched", far.Health())
	}
}

func TestLightningDamagesEveryoneOnBeam(t *testing.T) {
	onBeam1 := enemyAt(t, geom.Coord{X: 20, Y: 0})
	onBeam2 := enemyAt(t, geom.Coord{X: 60, Y: 0})
	offBeam := enemyAt(t, geom.Coord{X: 40, Y: 60})
	enemies := []*enemy.Enemy{onBeam1, onBeam2, offBeam}

	b := NewLightning(geom.Coord{}, geom.Coord{X: 80, Y: 0})
	u := b.Update(enemies, fieldBounds())
	if u.Alive() {
		t.Fatal("lightning lived past its tick")
	}
	if onBeam1.Health() != 0 || onBeam2.Health() != 0 {
		t.Fatalf("beam enemies health = %v, %v, want 0, 0", onBeam1.Health(), onBeam2.Health())
	}
	if offBeam.Health() != 1 {
		t.Fatalf("off-beam enemy health = %v, want untouched", offBeam.Health())
	}
}

func TestBeamEndpoints(t *testing.T) {
	b := NewLightning(geom.Coord{X: 1, Y: 2}, geom.Coord{X: 3, Y: 4})
	from, to := b.Beam()
	if from != (geom.Coord{X: 1, Y: 2}) || to != (geom.Coord{X: 3, Y: 4}) {
		t.Fatalf("Beam() = %v, %v", from, to)
	}
	if b.Kind() != KindLightning {
		t.Fatalf("Kind() = %v, want KindLightning", b.Kind())
	}
}
