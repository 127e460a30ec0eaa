package system

import (
	"errors"
	"testing"

	"candy-defense/internal/component"
	"candy-defense/internal/config"
	"candy-defense/internal/defs"
)

func cellPos(gx, gy int) (float64, float64) {
	return float64(gx * config.GridCellSize), float64(gy*config.GridCellSize + config.TopbarHeight)
}

func (w *world) spawnAt(t *testing.T, defID string, gx, gy int) *component.Enemy {
	t.Helper()
	x, y := cellPos(gx, gy)
	return w.spawn(t, defID, x, y)
}

func TestInRangeIsChebyshevAndPure(t *testing.T) {
	w := newWorld(t)
	tw := w.tower(t, "turret", 5, 5) // range 3

	cases := []struct {
		g    component.GridPos
		want bool
	}{
		{component.GridPos{X: 5, Y: 5}, true},
		{component.GridPos{X: 8, Y: 8}, true},
		{component.GridPos{X: 2, Y: 8}, true},
		{component.GridPos{X: 9, Y: 5}, false},
		{component.GridPos{X: 5, Y: 1}, false},
	}
	for _, c := range cases {
		first := tw.InRange(c.g)
		second := tw.InRange(c.g)
		if first != c.want || second != first {
			t.Errorf("InRange(%+v) = %v then %v, want %v", c.g, first, second, c.want)
		}
	}
}

func TestTowerTargetsFirstInRange(t *testing.T) {
	w := newWorld(t)
	tw := w.tower(t, "turret", 5, 5)
	w.spawnAt(t, "marshmallow", 0, 0) // out of range
	far := w.spawnAt(t, "marshmallow", 8, 8)
	w.spawnAt(t, "marshmallow", 5, 6) // closer, but later

	w.combat.Update()

	if tw.TargetID != far.ID {
		t.Errorf("TargetID = %d, want %d", tw.TargetID, far.ID)
	}
}

func TestTowerFiresThenCoolsDown(t *testing.T) {
	w := newWorld(t)
	tw := w.tower(t, "turret", 5, 5)
	w.spawnAt(t, "marshmallow", 6, 5)

	w.combat.Update()
	if len(w.ecs.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(w.ecs.Projectiles))
	}
	if tw.State != component.TowerFiring || tw.Cooldown != 30 {
		t.Errorf("state=%v cooldown=%d, want firing/30", tw.State, tw.Cooldown)
	}

	w.combat.Update()
	if tw.State != component.TowerCoolingDown || tw.Cooldown != 29 {
		t.Errorf("state=%v cooldown=%d, want cooling-down/29", tw.State, tw.Cooldown)
	}
	if len(w.ecs.Projectiles) != 1 {
		t.Errorf("fired during cooldown")
	}
}

func TestTowerIdleWithoutTarget(t *testing.T) {
	w := newWorld(t)
	tw := w.tower(t, "turret", 5, 5)
	w.combat.Update()
	if tw.State != component.TowerIdle || tw.TargetID != 0 {
		t.Errorf("state=%v target=%d, want idle/0", tw.State, tw.TargetID)
	}
}

func TestTowerDropsDeadTarget(t *testing.T) {
	w := newWorld(t)
	tw := w.tower(t, "turret", 5, 5)
	first := w.spawnAt(t, "marshmallow", 5, 6)
	second := w.spawnAt(t, "marshmallow", 6, 6)

	w.combat.Update()
	if tw.TargetID != first.ID {
		t.Fatalf("TargetID = %d, want %d", tw.TargetID, first.ID)
	}
	first.Health = 0
	w.combat.Update()
	if tw.TargetID != second.ID {
		t.Errorf("TargetID = %d, want %d", tw.TargetID, second.ID)
	}
}

func TestUpgradeTower(t *testing.T) {
	w := newWorld(t)
	tw := w.tower(t, "bomb", 1, 1)
	def := w.lib.Towers["bomb"]

	if _, err := UpgradeTower(tw, 10); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if tw.Tier != 0 || tw.Stats != def.Tiers[0] {
		t.Fatal("failed upgrade changed the tower")
	}

	for tier := 1; tier <= def.MaxTier(); tier++ {
		cost, err := UpgradeTower(tw, 1000)
		if err != nil {
			t.Fatalf("upgrade to %d: %v", tier, err)
		}
		if cost != def.Tiers[tier].Cost {
			t.Errorf("cost = %d, want %d", cost, def.Tiers[tier].Cost)
		}
		if tw.Tier != tier || tw.Stats != def.Tiers[tier] {
			t.Errorf("tier %d stats = %+v", tw.Tier, tw.Stats)
		}
	}
	if tw.Value != 50+45+70 {
		t.Errorf("Value = %d, want 165", tw.Value)
	}

	if _, err := UpgradeTower(tw, 1000); !errors.Is(err, ErrMaxTierReached) {
		t.Errorf("err = %v, want ErrMaxTierReached", err)
	}
	if tw.Tier < 0 || tw.Tier > tw.MaxTier() {
		t.Errorf("tier %d out of [0,%d]", tw.Tier, tw.MaxTier())
	}
}

func TestChannelTowerKeepsOneBeam(t *testing.T) {
	w := newWorld(t)
	tw := w.tower(t, "flamethrower", 5, 5)
	w.spawnAt(t, "cracker", 6, 5)

	for i := 0; i < tw.Stats.AttackDelay*3; i++ {
		w.combat.Update()
		w.projectiles.Update()
	}
	active := 0
	for _, p := range w.ecs.Projectiles {
		if p.Active && p.Kind == defs.ProjectileChannel {
			active++
		}
	}
	if active != 1 {
		t.Errorf("active channels = %d, want 1", active)
	}
}
