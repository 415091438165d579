// internal/system/weapon_test.go
package system

import (
	"math"
	"testing"

	"go-survivors/internal/audio"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
)

func newWeaponFixture() (*WeaponSystem, *entity.World) {
	w := newPlayingWorld()
	dispatcher := event.NewDispatcher()
	combat := NewCombatSystem(w, dispatcher)
	return NewWeaponSystem(w, combat, audio.Nop{}), w
}

func testMissile() component.MissileWeapon {
	return component.MissileWeapon{
		Level: 1, Damage: 25, MaxCooldown: 50,
		BulletSpeed: 9, BulletLife: 60, Penetration: 1, BulletRadius: 5,
	}
}

func TestMissileHoldsFireWithoutTarget(t *testing.T) {
	sys, w := newWeaponFixture()
	w.Player.Missile = testMissile()

	sys.Update()

	if len(w.Bullets) != 0 {
		t.Error("no target in range: no bullet must be spawned")
	}
	if w.Player.Missile.Cooldown != 0 {
		t.Errorf("cooldown must stay at zero until a shot is actually fired, got %v", w.Player.Missile.Cooldown)
	}
}

func TestMissileIgnoresOutOfRangeTarget(t *testing.T) {
	sys, w := newWeaponFixture()
	w.Player.Missile = testMissile()
	addEnemy(w, config.MissileTargetRange+100, 0, 100)

	sys.Update()

	if len(w.Bullets) != 0 {
		t.Error("target beyond search range must be ignored")
	}
}

func TestMissileFiresAtNearestEnemy(t *testing.T) {
	sys, w := newWeaponFixture()
	w.Player.Missile = testMissile()
	addEnemy(w, 100, 0, 100)
	addEnemy(w, 0, 300, 100)

	sys.Update()

	if len(w.Bullets) != 1 {
		t.Fatalf("expected exactly one bullet, got %d", len(w.Bullets))
	}
	for id := range w.Bullets {
		vel := w.Velocities[id]
		if vel.X != w.Player.Missile.BulletSpeed || vel.Y != 0 {
			t.Errorf("bullet must fly at the nearest enemy: got velocity (%v, %v)", vel.X, vel.Y)
		}
	}
	if w.Player.Missile.Cooldown != w.Player.Missile.MaxCooldown {
		t.Errorf("firing must reset cooldown to max, got %v", w.Player.Missile.Cooldown)
	}
}

func TestMissileCooldownCountsDown(t *testing.T) {
	sys, w := newWeaponFixture()
	missile := testMissile()
	missile.Cooldown = 3
	w.Player.Missile = missile
	addEnemy(w, 50, 0, 100)

	sys.Update()

	if len(w.Bullets) != 0 {
		t.Error("weapon on cooldown must not fire")
	}
	if w.Player.Missile.Cooldown != 2 {
		t.Errorf("cooldown must tick down by one, got %v", w.Player.Missile.Cooldown)
	}
}

func TestInactiveWeaponsDoNothing(t *testing.T) {
	sys, w := newWeaponFixture()
	// Все орудия на нулевом уровне.
	id := addEnemy(w, 5, 0, 100)

	for i := 0; i < 100; i++ {
		sys.Update()
	}
	if hp := w.Healths[id].Value; hp != 100 {
		t.Errorf("level 0 weapons must be inert, enemy hp changed to %v", hp)
	}
}

func TestAuraPulsesDiscretely(t *testing.T) {
	sys, w := newWeaponFixture()
	w.Player.Aura = component.AuraWeapon{Level: 1, Damage: 3, Radius: 60, TickRate: 30}
	id := addEnemy(w, 10, 0, 100)

	for i := 0; i < 30; i++ {
		sys.Update()
	}
	if hp := w.Healths[id].Value; hp != 97 {
		t.Errorf("one pulse per TickRate ticks: want hp 97, got %v", hp)
	}

	for i := 0; i < 30; i++ {
		sys.Update()
	}
	if hp := w.Healths[id].Value; hp != 94 {
		t.Errorf("second pulse after another TickRate ticks: want hp 94, got %v", hp)
	}
}

func TestAuraIgnoresEnemiesOutsideRadius(t *testing.T) {
	sys, w := newWeaponFixture()
	w.Player.Aura = component.AuraWeapon{Level: 1, Damage: 3, Radius: 60, TickRate: 5}
	id := addEnemy(w, 200, 0, 100)

	for i := 0; i < 20; i++ {
		sys.Update()
	}
	if hp := w.Healths[id].Value; hp != 100 {
		t.Errorf("enemy outside the aura must be untouched, got hp %v", hp)
	}
}

func TestOrbitContactDamageEveryTick(t *testing.T) {
	sys, w := newWeaponFixture()
	// Нулевой радиус орбиты сажает спутник на игрока: контакт гарантирован.
	w.Player.Orbit = component.OrbitWeapon{Level: 1, Damage: 10, Count: 1, OrbitRadius: 0, SatelliteRadius: 20, AngularSpeed: 0.06}
	id := addEnemy(w, 5, 0, 100)

	for i := 0; i < 3; i++ {
		sys.Update()
	}
	if hp := w.Healths[id].Value; hp != 70 {
		t.Errorf("orbit contact damage applies every tick: want hp 70, got %v", hp)
	}
}

func TestOrbitAngleAdvances(t *testing.T) {
	sys, w := newWeaponFixture()
	w.Player.Orbit = component.OrbitWeapon{Level: 1, Damage: 10, Count: 2, OrbitRadius: 80, SatelliteRadius: 12, AngularSpeed: 0.06}

	sys.Update()
	sys.Update()

	if got := w.Player.Orbit.Angle; math.Abs(got-0.12) > 1e-9 {
		t.Errorf("orbit angle must advance by AngularSpeed per tick: want 0.12, got %v", got)
	}
}
