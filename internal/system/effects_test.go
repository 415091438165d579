// internal/system/effects_test.go
package system

import (
	"testing"

	"go-survivors/internal/config"
	"go-survivors/internal/utils"
)

func TestKillBurstSpawnsParticles(t *testing.T) {
	w := newPlayingWorld()
	sys := NewEffectsSystem(w, utils.NewPRNGService(1))

	sys.SpawnBurst(10, 10, config.PlayerColor)

	if len(w.Particles) != config.KillBurstParticles {
		t.Fatalf("want %d particles, got %d", config.KillBurstParticles, len(w.Particles))
	}
	for id, p := range w.Particles {
		if p.Life <= 0 || p.Life != p.MaxLife {
			t.Errorf("fresh particle must start at full life, got %d/%d", p.Life, p.MaxLife)
		}
		if w.Velocities[id] == nil {
			t.Error("burst particle needs an initial velocity")
		}
	}
}

func TestParticlesExpire(t *testing.T) {
	w := newPlayingWorld()
	sys := NewEffectsSystem(w, utils.NewPRNGService(1))
	sys.SpawnBurst(0, 0, config.PlayerColor)

	// Самая долгоживущая частица гаснет не позже этого горизонта.
	for i := 0; i < 40; i++ {
		sys.Update()
		w.Cleanup()
	}
	if len(w.Particles) != 0 {
		t.Errorf("all particles must expire, %d left", len(w.Particles))
	}
}

func TestFloatingTextDriftsAndExpires(t *testing.T) {
	w := newPlayingWorld()
	sys := NewEffectsSystem(w, utils.NewPRNGService(1))
	sys.SpawnText(100, 100, "42", config.DamageTextColor)

	var startY float64
	for id := range w.FloatingTexts {
		startY = w.Positions[id].Y
	}
	sys.Update()
	for id := range w.FloatingTexts {
		if got := w.Positions[id].Y; got >= startY {
			t.Errorf("text must drift upward: started %v, now %v", startY, got)
		}
	}

	for i := 0; i < config.FloatingTextLife; i++ {
		sys.Update()
		w.Cleanup()
	}
	if len(w.FloatingTexts) != 0 {
		t.Errorf("floating text must expire after its lifetime, %d left", len(w.FloatingTexts))
	}
}
