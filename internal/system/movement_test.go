// internal/system/movement_test.go
package system

import (
	"math"
	"testing"

	"go-survivors/internal/audio"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/input"
)

func TestWalkNormalizesDiagonal(t *testing.T) {
	w := newPlayingWorld()
	src := newFakeInput()
	src.press(input.KeyRight, input.KeyDown)
	NewMovementSystem(w, src, audio.Nop{}).Update()

	pos := w.Positions[w.PlayerID]
	want := config.PlayerSpeed / math.Sqrt2
	if math.Abs(pos.X-want) > 1e-9 || math.Abs(pos.Y-want) > 1e-9 {
		t.Errorf("diagonal step must be normalized: got (%v, %v), want (%v, %v)", pos.X, pos.Y, want, want)
	}
}

func TestDashRequiresMovementInput(t *testing.T) {
	w := newPlayingWorld()
	src := newFakeInput()
	src.press(input.KeyDash)
	NewMovementSystem(w, src, audio.Nop{}).Update()

	if w.Player.DashState != component.DashIdle {
		t.Error("dash without a movement vector must not start")
	}
}

func TestDashBlockedByCooldown(t *testing.T) {
	w := newPlayingWorld()
	w.Player.DashCooldown = 5
	src := newFakeInput()
	src.press(input.KeyDash, input.KeyRight)
	NewMovementSystem(w, src, audio.Nop{}).Update()

	if w.Player.DashState != component.DashIdle {
		t.Error("dash on cooldown must not start")
	}
	// Вместо рывка — обычный шаг.
	if pos := w.Positions[w.PlayerID]; pos.X != config.PlayerSpeed {
		t.Errorf("expected a walk step of %v, got %v", config.PlayerSpeed, pos.X)
	}
}

func TestDashTransition(t *testing.T) {
	w := newPlayingWorld()
	src := newFakeInput()
	src.press(input.KeyDash, input.KeyRight)
	NewMovementSystem(w, src, audio.Nop{}).Update()

	p := w.Player
	if p.DashState != component.DashDashing {
		t.Fatal("dash must start with key held, movement vector and zero cooldown")
	}
	if p.DashCooldown != p.MaxDashCooldown {
		t.Errorf("cooldown must be set to exactly MaxDashCooldown (%d), got %d", p.MaxDashCooldown, p.DashCooldown)
	}
	if p.DashTicks != config.DashDurationTicks-1 {
		t.Errorf("first dash tick already consumed: want %d, got %d", config.DashDurationTicks-1, p.DashTicks)
	}
	if pos := w.Positions[w.PlayerID]; pos.X != config.DashSpeed {
		t.Errorf("dash step must move at DashSpeed: want %v, got %v", config.DashSpeed, pos.X)
	}
	if len(p.Trail) != 1 || p.Trail[0].Alpha != 1.0 {
		t.Errorf("dash tick must append one fully opaque trail point, got %v", p.Trail)
	}
}

func TestDashTickWithoutInputHoldsPosition(t *testing.T) {
	w := newPlayingWorld()
	w.Player.DashState = component.DashDashing
	w.Player.DashTicks = 5
	src := newFakeInput()
	NewMovementSystem(w, src, audio.Nop{}).Update()

	if pos := w.Positions[w.PlayerID]; pos.X != 0 || pos.Y != 0 {
		t.Error("dash carries no momentum: without held keys the position stays")
	}
	if len(w.Player.Trail) != 1 {
		t.Error("trail point is appended on every dash tick, moving or not")
	}
	if w.Player.DashTicks != 4 {
		t.Errorf("dash duration must still tick down, got %d", w.Player.DashTicks)
	}
}

func TestDashEndsAfterDuration(t *testing.T) {
	w := newPlayingWorld()
	src := newFakeInput()
	src.press(input.KeyDash, input.KeyRight)
	sys := NewMovementSystem(w, src, audio.Nop{})

	for i := 0; i < config.DashDurationTicks; i++ {
		sys.Update()
	}
	if w.Player.DashState != component.DashIdle {
		t.Errorf("dash must end after %d ticks", config.DashDurationTicks)
	}
}

func TestCooldownFloorsAtZero(t *testing.T) {
	w := newPlayingWorld()
	w.Player.DashCooldown = 1
	sys := NewMovementSystem(w, newFakeInput(), audio.Nop{})
	sys.Update()
	sys.Update()
	if w.Player.DashCooldown != 0 {
		t.Errorf("cooldown must floor at zero, got %d", w.Player.DashCooldown)
	}
}

func TestTrailDecay(t *testing.T) {
	w := newPlayingWorld()
	w.Player.Trail = []component.TrailPoint{
		{Alpha: 1.0},
		{Alpha: config.TrailFade / 2}, // исчезнет на этом тике
	}
	NewMovementSystem(w, newFakeInput(), audio.Nop{}).Update()

	trail := w.Player.Trail
	if len(trail) != 1 {
		t.Fatalf("faded points must be dropped: want 1 point, got %d", len(trail))
	}
	want := 1.0 - config.TrailFade
	if math.Abs(trail[0].Alpha-want) > 1e-9 {
		t.Errorf("alpha must decay by TrailFade: want %v, got %v", want, trail[0].Alpha)
	}
}
