// internal/system/collision.go
package system

import (
	"fmt"
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
)

// CollisionSystem — проход столкновений и последствий: движение врагов
// к игроку, расталкивание, контакт с игроком, снаряды, магнетизм гемов.
// Все смерти и подборы только помечают сущности; удаляет их Cleanup
// в конце тика, поэтому обходы коллекций всегда безопасны.
type CollisionSystem struct {
	world      *entity.World
	combat     *CombatSystem
	effects    *EffectsSystem
	dispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, combat *CombatSystem, effects *EffectsSystem, dispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{world: world, combat: combat, effects: effects, dispatcher: dispatcher}
}

func (s *CollisionSystem) Update() {
	player := s.world.Player
	if player == nil {
		return
	}
	playerPos := s.world.Positions[s.world.PlayerID]
	if playerPos == nil {
		return
	}

	s.moveEnemies(playerPos)
	if s.world.Tick%config.SeparationInterval == 0 {
		s.separateEnemies()
	}
	s.resolvePlayerContact(player, playerPos)
	s.advanceBullets()
	s.attractGems(player, playerPos)
}

// moveEnemies ведёт каждого врага по прямой к игроку.
func (s *CollisionSystem) moveEnemies(playerPos *component.Position) {
	for id, enemy := range s.world.Enemies {
		if !s.world.Alive(id) {
			continue
		}
		pos := s.world.Positions[id]
		if pos == nil {
			continue
		}
		dx, dy := utils.Normalize(playerPos.X-pos.X, playerPos.Y-pos.Y)
		pos.X += dx * enemy.Speed
		pos.Y += dy * enemy.Speed
	}
}

// separateEnemies мягко расталкивает пересекающихся врагов. Запускается
// раз в 5 тиков ради стоимости: это приближение, а не физика. Быстрая
// проверка ограничивающим прямоугольником отсекает дальние пары.
func (s *CollisionSystem) separateEnemies() {
	ids := make([]types.EntityID, 0, len(s.world.Enemies))
	for id := range s.world.Enemies {
		if s.world.Alive(id) {
			ids = append(ids, id)
		}
	}
	for i := 0; i < len(ids); i++ {
		posA := s.world.Positions[ids[i]]
		radA := s.radius(ids[i])
		for j := i + 1; j < len(ids); j++ {
			posB := s.world.Positions[ids[j]]
			if posA == nil || posB == nil {
				continue
			}
			dx := posB.X - posA.X
			dy := posB.Y - posA.Y
			if math.Abs(dx) >= config.SeparationBBox || math.Abs(dy) >= config.SeparationBBox {
				continue
			}
			minDist := radA + s.radius(ids[j])
			dist := math.Hypot(dx, dy)
			if dist == 0 || dist >= minDist {
				continue
			}
			overlap := minDist - dist
			pushX := dx / dist * overlap * config.SeparationPush
			pushY := dy / dist * overlap * config.SeparationPush
			posA.X -= pushX
			posA.Y -= pushY
			posB.X += pushX
			posB.Y += pushY
		}
	}
}

// resolvePlayerContact: рывок — окно неуязвимости и мгновенного убийства;
// иначе игрок получает контактный урон и отбрасывается по курсу врага.
func (s *CollisionSystem) resolvePlayerContact(player *component.Player, playerPos *component.Position) {
	playerRadius := s.radius(s.world.PlayerID)
	health := s.world.Healths[s.world.PlayerID]

	for id, enemy := range s.world.Enemies {
		if !s.world.Alive(id) {
			continue
		}
		pos := s.world.Positions[id]
		if pos == nil {
			continue
		}
		dist := utils.Dist(pos.X, pos.Y, playerPos.X, playerPos.Y)
		if dist >= playerRadius+s.radius(id) {
			continue
		}

		if player.DashState == component.DashDashing {
			s.effects.SpawnText(pos.X, pos.Y, "KILL", config.DamageTextColor)
			s.combat.ApplyDamage(id, config.DashKillDamage)
			continue
		}

		if health != nil {
			health.Value -= enemy.Damage
			// Отталкиваем игрока по курсу сближения врага.
			dx, dy := utils.Normalize(playerPos.X-pos.X, playerPos.Y-pos.Y)
			playerPos.X += dx * config.ContactKnockback
			playerPos.Y += dy * config.ContactKnockback
			if health.Value <= 0 {
				health.Value = 0
				s.dispatcher.Dispatch(event.Event{Type: event.PlayerDied})
			}
		}
	}
}

// advanceBullets продвигает снаряды, снимает время жизни и проверяет
// контакт со всеми непомеченными врагами. Исчерпанное пробитие помечает
// снаряд и немедленно завершает его проверку.
func (s *CollisionSystem) advanceBullets() {
	for id, bullet := range s.world.Bullets {
		if !s.world.Alive(id) {
			continue
		}
		pos := s.world.Positions[id]
		vel := s.world.Velocities[id]
		if pos == nil || vel == nil {
			s.world.MarkForRemoval(id)
			continue
		}
		pos.X += vel.X
		pos.Y += vel.Y
		bullet.Life--
		if bullet.Life <= 0 {
			s.world.MarkForRemoval(id)
			continue
		}

		bulletRadius := s.radius(id)
		for enemyID := range s.world.Enemies {
			if !s.world.Alive(enemyID) {
				continue
			}
			enemyPos := s.world.Positions[enemyID]
			if enemyPos == nil {
				continue
			}
			if utils.Dist(pos.X, pos.Y, enemyPos.X, enemyPos.Y) >= bulletRadius+s.radius(enemyID) {
				continue
			}
			s.combat.ApplyDamage(enemyID, bullet.Damage)
			s.effects.SpawnText(enemyPos.X, enemyPos.Y, fmt.Sprintf("%.0f", bullet.Damage), config.DamageTextColor)
			bullet.Penetration--
			if bullet.Penetration <= 0 {
				s.world.MarkForRemoval(id)
				break
			}
		}
	}
}

// attractGems: в радиусе магнетизма гем плавно смещается к игроку
// пропорциональным шагом; на контакте помечается и засчитывается в опыт.
func (s *CollisionSystem) attractGems(player *component.Player, playerPos *component.Position) {
	magnetRadius := config.GemMagnetBase + config.GemMagnetPerLevel*float64(player.Level)
	playerRadius := s.radius(s.world.PlayerID)

	for id, gem := range s.world.Gems {
		if !s.world.Alive(id) {
			continue
		}
		pos := s.world.Positions[id]
		if pos == nil {
			continue
		}
		dist := utils.Dist(pos.X, pos.Y, playerPos.X, playerPos.Y)
		if dist < magnetRadius {
			pos.X += (playerPos.X - pos.X) * config.GemEase
			pos.Y += (playerPos.Y - pos.Y) * config.GemEase
		}
		if dist < playerRadius+s.radius(id) {
			s.world.MarkForRemoval(id)
			s.dispatcher.Dispatch(event.Event{
				Type: event.GemCollected,
				Data: event.GemCollectedData{Value: gem.Value, X: pos.X, Y: pos.Y},
			})
		}
	}
}

func (s *CollisionSystem) radius(id types.EntityID) float64 {
	if r, ok := s.world.Renderables[id]; ok {
		return r.Radius
	}
	return 0
}
