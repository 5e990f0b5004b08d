package tower

import (
	"math"
	"testing"

	"github.com/jbeda/geom"

	"across/pkg/bullet"
	"across/pkg/enemy"
	"across/pkg/routing"
)

func enemyAt(t *testing.T, pos geom.Coord) *enemy.Enemy {
	t.Helper()
	r, err := routing.NewRoute([]geom.Coord{pos, pos.Plus(geom.Coord{X: 0, Y: 1000})})
	if err != nil {
		t.Fatalf("NewRoute: %v", err)
	}
	return enemy.Spawn(r)
}

func TestPrice(t *testing.T) {
	if got := Price(KindCannon); got != 10 {
		t.Fatalf("Price(KindCannon) = %d, want 10", got)
	}
	if got := Price(KindArc); got != 25 {
		t.Fatalf("Price(KindArc) = %d, want 25", got)
	}
}

func TestTargetPicksFirstInRange(t *testing.T) {
	tw := New(KindCannon, geom.Coord{}, 0)
	out := enemyAt(t, geom.Coord{X: 100, Y: 0})
	first := enemyAt(t, geom.Coord{X: 30, Y: 0})
	second := enemyAt(t, geom.Coord{X: 10, Y: 0})

	got := tw.Target([]*enemy.Enemy{out, first, second})
	if got != first {
		t.Fatal("Target did not pick the earliest-spawned enemy in range")
	}
	if tw.Target([]*enemy.Enemy{out}) != nil {
		t.Fatal("Target found an enemy outside the range")
	}
}

func TestCannonFiresAndCoolsDown(t *testing.T) {
	tw := New(KindCannon, geom.Coord{}, 0)
	enemies := []*enemy.Enemy{enemyAt(t, geom.Coord{X: 30, Y: 0})}

	b := tw.Update(enemies)
	if b == nil {
		t.Fatal("ready tower with a target did not fire")
	}
	if b.Kind() != bullet.KindProjectile {
		t.Fatalf("cannon fired %v, want KindProjectile", b.Kind())
	}

	for i := 0; i < 60; i++ {
		if b := tw.Update(enemies); b != nil {
			t.Fatalf("fired again %d ticks into cooldown", i+1)
		}
	}
	if b := tw.Update(enemies); b == nil {
		t.Fatal("tower did not fire after cooldown expired")
	}
}

func TestArcFiresLightning(t *testing.T) {
	tw := New(KindArc, geom.Coord{}, 0)
	enemies := []*enemy.Enemy{enemyAt(t, geom.Coord{X: 100, Y: 0})}

	b := tw.Update(enemies)
	if b == nil {
		t.Fatal("arc tower did not fire")
	}
	if b.Kind() != bullet.KindLightning {
		t.Fatalf("arc tower fired %v, want KindLightning", b.Kind())
	}
	from, to := b.Beam()
	if from != (geom.Coord{}) || to != (geom.Coord{X: 100, Y: 0}) {
		t.Fatalf("Beam() = %v, %v", from, to)
	}
}

func TestArcRespectsWedge(t *testing.T) {
	// Facing +x; an enemy at the same distance but off to the side is safe.
	tw := New(KindArc, geom.Coord{}, 0)
	behind := enemyAt(t, geom.Coord{X: 0, Y: 100})
	if tw.Update([]*enemy.Enemy{behind}) != nil {
		t.Fatal("arc tower fired outside its wedge")
	}

	facing := New(KindArc, geom.Coord{}, math.Pi/2)
	if facing.Update([]*enemy.Enemy{behind}) == nil {
		t.Fatal("rotated arc tower did not fire at an enemy dead ahead")
	}
}

func TestIdleTowerStaysReady(t *testing.T) {
	tw := New(KindCannon, geom.Coord{}, 0)
	for i := 0; i < 10; i++ {
		if tw.Update(nil) != nil {
			t.Fatal("tower fired with no enemies")
		}
	}
	// No cooldown was spent idling; the first target is shot immediately.
	if tw.Update([]*enemy.Enemy{enemyAt(t, geom.Coord{X: 30, Y: 0})}) == nil {
		t.Fatal("idle tower was not ready to fire")
	}
}
