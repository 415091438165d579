// internal/system/effects.go
package system

import (
	"image/color"
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/utils"
)

// EffectsSystem порождает и гасит косметические сущности: частицы
// и всплывающие надписи. Отрисовка — дело рендерера, здесь только распад.
type EffectsSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewEffectsSystem(world *entity.World, rng *utils.PRNGService) *EffectsSystem {
	return &EffectsSystem{world: world, rng: rng}
}

func (s *EffectsSystem) Update() {
	for id, particle := range s.world.Particles {
		if !s.world.Alive(id) {
			continue
		}
		pos := s.world.Positions[id]
		vel := s.world.Velocities[id]
		if pos != nil && vel != nil {
			pos.X += vel.X
			pos.Y += vel.Y
			vel.X *= config.ParticleDrag
			vel.Y *= config.ParticleDrag
		}
		particle.Life--
		if particle.Life <= 0 {
			s.world.MarkForRemoval(id)
		}
	}

	for id, text := range s.world.FloatingTexts {
		if !s.world.Alive(id) {
			continue
		}
		if pos := s.world.Positions[id]; pos != nil {
			pos.Y -= config.FloatingTextDrift
		}
		text.Life--
		if text.Life <= 0 {
			s.world.MarkForRemoval(id)
		}
	}
}

// SpawnBurst создаёт сноп частиц в точке гибели врага.
func (s *EffectsSystem) SpawnBurst(x, y float64, c color.RGBA) {
	for i := 0; i < config.KillBurstParticles; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := 1.0 + s.rng.Float64()*3.0
		life := 20 + s.rng.Intn(20)

		id := s.world.NewEntity()
		s.world.Positions[id] = &component.Position{X: x, Y: y}
		s.world.Velocities[id] = &component.Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		s.world.Particles[id] = &component.Particle{Life: life, MaxLife: life, Color: c}
	}
}

// SpawnText создаёт всплывающую надпись (число урона, подбор гема).
func (s *EffectsSystem) SpawnText(x, y float64, msg string, c color.RGBA) {
	id := s.world.NewEntity()
	s.world.Positions[id] = &component.Position{X: x, Y: y}
	s.world.FloatingTexts[id] = &component.FloatingText{Text: msg, Color: c, Life: config.FloatingTextLife}
}
