// internal/system/movement.go
package system

import (
	"go-survivors/internal/audio"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/input"
	"go-survivors/internal/utils"
)

// MovementSystem разрешает ввод в движение игрока и ведёт мини-автомат
// рывка. Каждый тик рывка позиция добавляется в след с полной
// непрозрачностью; след затухает всегда, независимо от состояния.
type MovementSystem struct {
	world *entity.World
	input input.Source
	audio audio.Player
}

func NewMovementSystem(world *entity.World, src input.Source, cues audio.Player) *MovementSystem {
	return &MovementSystem{world: world, input: src, audio: cues}
}

func (s *MovementSystem) Update() {
	p := s.world.Player
	if p == nil {
		return
	}
	pos := s.world.Positions[s.world.PlayerID]
	if pos == nil {
		return
	}

	s.decayTrail(p)

	dx, dy := s.moveVector()

	// Кулдаун тикает всегда, в обоих состояниях, с полом в ноль.
	if p.DashCooldown > 0 {
		p.DashCooldown--
	}

	switch p.DashState {
	case component.DashIdle:
		if s.input.IsHeld(input.KeyDash) && (dx != 0 || dy != 0) && p.DashCooldown <= 0 {
			p.DashState = component.DashDashing
			p.DashTicks = config.DashDurationTicks
			p.DashCooldown = p.MaxDashCooldown
			s.audio.Play(audio.CueDash)
			s.dashStep(p, pos, dx, dy)
			return
		}
		pos.X += dx * p.Speed
		pos.Y += dy * p.Speed

	case component.DashDashing:
		s.dashStep(p, pos, dx, dy)
	}
}

// dashStep продвигает один тик рывка. Направление берётся из текущего
// ввода: без удерживаемых клавиш позиция в этот тик не меняется,
// накопленного импульса нет.
func (s *MovementSystem) dashStep(p *component.Player, pos *component.Position, dx, dy float64) {
	if dx != 0 || dy != 0 {
		pos.X += dx * config.DashSpeed
		pos.Y += dy * config.DashSpeed
	}
	p.Trail = append(p.Trail, component.TrailPoint{X: pos.X, Y: pos.Y, Alpha: 1.0})

	p.DashTicks--
	if p.DashTicks <= 0 {
		p.DashState = component.DashIdle
	}
}

// moveVector собирает до четырёх направляющих битов в единичный вектор.
func (s *MovementSystem) moveVector() (float64, float64) {
	var dx, dy float64
	if s.input.IsHeld(input.KeyLeft) {
		dx -= 1
	}
	if s.input.IsHeld(input.KeyRight) {
		dx += 1
	}
	if s.input.IsHeld(input.KeyUp) {
		dy -= 1
	}
	if s.input.IsHeld(input.KeyDown) {
		dy += 1
	}
	return utils.Normalize(dx, dy)
}

func (s *MovementSystem) decayTrail(p *component.Player) {
	trail := p.Trail[:0]
	for _, tp := range p.Trail {
		tp.Alpha -= config.TrailFade
		if tp.Alpha > 0 {
			trail = append(trail, tp)
		}
	}
	p.Trail = trail
}
