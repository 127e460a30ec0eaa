package system

import (
	"testing"

	"candy-defense/internal/component"
	"candy-defense/internal/defs"
)

func TestSplashHitsPerAxis(t *testing.T) {
	w := newWorld(t)
	struck := w.spawn(t, "smore", 100, 100)
	near := w.spawn(t, "smore", 100, 228)
	far := w.spawn(t, "smore", 500, 500)

	w.ecs.AddProjectile(&component.Projectile{
		Kind:         defs.ProjectileSplash,
		DamageType:   defs.DamageBomb,
		Damage:       10,
		SplashRadius: 2,
		Pos:          component.Position{X: 132, Y: 132},
		Width:        21,
		Height:       21,
		Active:       true,
	})
	w.collision.Update()

	if struck.Health != 140 {
		t.Errorf("struck health = %v, want 140", struck.Health)
	}
	if near.Health != 145 {
		t.Errorf("near health = %v, want 145", near.Health)
	}
	if far.Health != 150 {
		t.Errorf("far health = %v, want 150", far.Health)
	}
	if w.ecs.Projectiles[0].Active {
		t.Error("splash projectile still active")
	}
}

// A projectile clipping the corner of an enemy splashes around that enemy,
// not around the point of impact.
func TestSplashCentredOnStruckEnemy(t *testing.T) {
	w := newWorld(t)
	struck := w.spawn(t, "smore", 100, 100)
	behind := w.spawn(t, "smore", 40, 40)

	w.ecs.AddProjectile(&component.Projectile{
		Kind:         defs.ProjectileSplash,
		DamageType:   defs.DamageBomb,
		Damage:       10,
		SplashRadius: 1,
		Pos:          component.Position{X: 170, Y: 170},
		Width:        21,
		Height:       21,
		Active:       true,
	})
	w.collision.Update()

	if struck.Health != 140 {
		t.Errorf("struck health = %v, want 140", struck.Health)
	}
	if behind.Health != 145 {
		t.Errorf("behind health = %v, want 145", behind.Health)
	}
}

func TestInSplashBoundary(t *testing.T) {
	c := component.Position{X: 100, Y: 100}
	if !InSplash(c, component.Position{X: 228, Y: 900}, 128) {
		t.Error("x distance equal to reach should be inside")
	}
	if InSplash(c, component.Position{X: 229, Y: 229}, 128) {
		t.Error("both axes beyond reach should be outside")
	}
}

func TestPiercingStrikesThreeOfFour(t *testing.T) {
	w := newWorld(t)
	var line []*component.Enemy
	for i := 0; i < 4; i++ {
		line = append(line, w.spawn(t, "smore", float64(100+100*i), 100))
	}
	p := &component.Projectile{
		Kind:       defs.ProjectilePiercing,
		DamageType: defs.DamageSaw,
		Damage:     5,
		PierceLeft: 3,
		Pos:        component.Position{X: 32, Y: 132},
		Vel:        component.Position{X: 100},
		Width:      21,
		Height:     21,
		Active:     true,
	}
	w.ecs.AddProjectile(p)

	for tick := 0; tick < 4; tick++ {
		w.projectiles.Update()
		w.collision.Update()
	}

	for i, e := range line[:3] {
		if e.Health != 145 {
			t.Errorf("enemy %d health = %v, want 145", i, e.Health)
		}
	}
	if line[3].Health != 150 {
		t.Errorf("fourth enemy health = %v, want 150", line[3].Health)
	}
	if p.Active {
		t.Error("piercing projectile still active")
	}
}

func TestPiercingNeverHitsSameEnemyTwice(t *testing.T) {
	w := newWorld(t)
	e := w.spawn(t, "smore", 100, 100)
	p := &component.Projectile{
		Kind:       defs.ProjectilePiercing,
		Damage:     5,
		DamageType: defs.DamageSaw,
		PierceLeft: 3,
		Pos:        component.Position{X: 132, Y: 132},
		Width:      21,
		Height:     21,
		Active:     true,
	}
	w.ecs.AddProjectile(p)
	for i := 0; i < 3; i++ {
		w.collision.Update()
	}
	if e.Health != 145 || p.PierceLeft != 2 {
		t.Errorf("health=%v pierce=%d, want 145/2", e.Health, p.PierceLeft)
	}
}

func TestDirectHitsOnlyFirstOverlap(t *testing.T) {
	w := newWorld(t)
	a := w.spawn(t, "smore", 100, 100)
	b := w.spawn(t, "smore", 110, 100)
	w.ecs.AddProjectile(&component.Projectile{
		Kind:       defs.ProjectileDirect,
		DamageType: defs.DamageDefault,
		Damage:     3,
		Pos:        component.Position{X: 140, Y: 132},
		Width:      21,
		Height:     21,
		Active:     true,
	})
	w.collision.Update()
	if a.Health != 147 || b.Health != 150 {
		t.Errorf("health a=%v b=%v, want 147/150", a.Health, b.Health)
	}
}

func TestChannelDamagesEveryOverlapEachTick(t *testing.T) {
	w := newWorld(t)
	a := w.spawn(t, "smore", 100, 100)
	b := w.spawn(t, "smore", 120, 110)
	w.ecs.AddProjectile(&component.Projectile{
		Kind:       defs.ProjectileChannel,
		DamageType: defs.DamageFire,
		Damage:     2,
		Pos:        component.Position{X: 140, Y: 140},
		Width:      64,
		Height:     64,
		Active:     true,
	})
	w.collision.Update()
	w.collision.Update()
	if a.Health != 146 || b.Health != 146 {
		t.Errorf("health a=%v b=%v, want 146/146", a.Health, b.Health)
	}
}

func TestTouchingBoxesDoNotCollide(t *testing.T) {
	w := newWorld(t)
	e := w.spawn(t, "smore", 100, 100)
	w.ecs.AddProjectile(&component.Projectile{
		Kind:   defs.ProjectileDirect,
		Damage: 3,
		Pos:    component.Position{X: 174, Y: 132}, // left edge at 164
		Width:  20,
		Height: 20,
		Active: true,
	})
	w.collision.Update()
	if e.Health != 150 {
		t.Errorf("health = %v, want 150", e.Health)
	}
}
