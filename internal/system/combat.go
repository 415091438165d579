// internal/system/combat.go
package system

import (
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
)

// CombatSystem — единая точка нанесения урона врагам. Смерть помечает
// сущность на отложенное удаление и рассылает EnemyKilled; компоненты
// врага остаются читаемыми до очистки в конце тика.
type CombatSystem struct {
	world      *entity.World
	dispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, dispatcher: dispatcher}
}

// ApplyDamage наносит врагу урон. Повторное убийство уже помеченной
// сущности не засчитывается.
func (s *CombatSystem) ApplyDamage(id types.EntityID, damage float64) {
	if !s.world.Alive(id) {
		return
	}
	health, ok := s.world.Healths[id]
	if !ok {
		return
	}
	health.Value -= damage
	if health.Value <= 0 {
		health.Value = 0
		s.world.MarkForRemoval(id)
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{ID: id}})
	}
}
