// internal/system/weapon.go
package system

import (
	"math"

	"go-survivors/internal/audio"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
)

// WeaponSystem ведёт три независимых орудия игрока. У каждого свой
// уровень, урон и таймеры; уровень 0 означает, что орудие неактивно.
type WeaponSystem struct {
	world  *entity.World
	combat *CombatSystem
	audio  audio.Player
}

func NewWeaponSystem(world *entity.World, combat *CombatSystem, cues audio.Player) *WeaponSystem {
	return &WeaponSystem{world: world, combat: combat, audio: cues}
}

func (s *WeaponSystem) Update() {
	p := s.world.Player
	if p == nil {
		return
	}
	pos := s.world.Positions[s.world.PlayerID]
	if pos == nil {
		return
	}
	s.updateMissile(p, pos)
	s.updateOrbit(p, pos)
	s.updateAura(p, pos)
}

// updateMissile: на нуле кулдауна выбирается ближайший враг в радиусе
// поиска. Без цели выстрела нет и кулдаун не сбрасывается.
func (s *WeaponSystem) updateMissile(p *component.Player, pos *component.Position) {
	m := &p.Missile
	if m.Level <= 0 {
		return
	}
	if m.Cooldown > 0 {
		m.Cooldown--
		return
	}

	targetID, ok := s.nearestEnemy(pos, config.MissileTargetRange)
	if !ok {
		return
	}
	targetPos := s.world.Positions[targetID]
	dx, dy := utils.Normalize(targetPos.X-pos.X, targetPos.Y-pos.Y)

	id := s.world.NewEntity()
	s.world.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.world.Velocities[id] = &component.Velocity{X: dx * m.BulletSpeed, Y: dy * m.BulletSpeed}
	s.world.Bullets[id] = &component.Bullet{
		Damage:      m.Damage,
		Life:        m.BulletLife,
		Penetration: m.Penetration,
	}
	s.world.Renderables[id] = &component.Renderable{Color: config.BulletColor, Radius: m.BulletRadius}

	s.audio.Play(audio.CueShoot)
	m.Cooldown = m.MaxCooldown
}

// updateOrbit: спутники равномерно распределены по орбите и бьют каждый
// тик, пока враг остаётся в зоне контакта.
func (s *WeaponSystem) updateOrbit(p *component.Player, pos *component.Position) {
	o := &p.Orbit
	if o.Level <= 0 || o.Count <= 0 {
		return
	}
	o.Angle += o.AngularSpeed

	enemies := s.enemyPositions()
	for i := 0; i < o.Count; i++ {
		angle := o.Angle + float64(i)*2*math.Pi/float64(o.Count)
		sx := pos.X + math.Cos(angle)*o.OrbitRadius
		sy := pos.Y + math.Sin(angle)*o.OrbitRadius
		for id, enemyPos := range enemies {
			radius := o.SatelliteRadius
			if r, ok := s.world.Renderables[id]; ok {
				radius += r.Radius
			}
			if utils.Dist(sx, sy, enemyPos.X, enemyPos.Y) < radius {
				s.combat.ApplyDamage(id, o.Damage)
			}
		}
	}
}

// updateAura: счётчик тиков; на срабатывании каждый враг в радиусе
// получает урон ровно один раз — дискретный пульс, не непрерывный урон.
func (s *WeaponSystem) updateAura(p *component.Player, pos *component.Position) {
	a := &p.Aura
	if a.Level <= 0 {
		return
	}
	a.Ticker++
	if a.Ticker < a.TickRate {
		return
	}
	a.Ticker = 0
	for id, enemyPos := range s.enemyPositions() {
		if utils.Dist(pos.X, pos.Y, enemyPos.X, enemyPos.Y) < a.Radius {
			s.combat.ApplyDamage(id, a.Damage)
		}
	}
}

// nearestEnemy находит ближайшего непомеченного врага в радиусе.
func (s *WeaponSystem) nearestEnemy(pos *component.Position, maxRange float64) (types.EntityID, bool) {
	var bestID types.EntityID
	best := maxRange
	found := false
	for id := range s.world.Enemies {
		if !s.world.Alive(id) {
			continue
		}
		enemyPos, ok := s.world.Positions[id]
		if !ok {
			continue
		}
		d := utils.Dist(pos.X, pos.Y, enemyPos.X, enemyPos.Y)
		if d <= best {
			best = d
			bestID = id
			found = true
		}
	}
	return bestID, found
}

func (s *WeaponSystem) enemyPositions() map[types.EntityID]*component.Position {
	result := make(map[types.EntityID]*component.Position, len(s.world.Enemies))
	for id := range s.world.Enemies {
		if !s.world.Alive(id) {
			continue
		}
		if pos, ok := s.world.Positions[id]; ok {
			result[id] = pos
		}
	}
	return result
}
