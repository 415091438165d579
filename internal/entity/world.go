// internal/entity/world.go
package entity

import (
	"go-survivors/internal/component"
	"go-survivors/internal/types"
)

// World — авторитетное изменяемое состояние одной сессии: коллекции
// компонентов, синглтоны игрока и сессии, счётчики. Все системы одного
// тика видят согласованное состояние до очистки: помеченные сущности
// удаляются только в Cleanup, никогда посреди обхода.
type World struct {
	Tick  int
	Score int

	NextID   types.EntityID
	PlayerID types.EntityID

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Bullets       map[types.EntityID]*component.Bullet
	Gems          map[types.EntityID]*component.Gem
	Particles     map[types.EntityID]*component.Particle
	FloatingTexts map[types.EntityID]*component.FloatingText

	Player  *component.Player
	Session *component.Session

	removed map[types.EntityID]struct{}
}

// NewWorld создаёт пустой мир в фазе меню, без игрока.
func NewWorld() *World {
	return &World{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Bullets:       make(map[types.EntityID]*component.Bullet),
		Gems:          make(map[types.EntityID]*component.Gem),
		Particles:     make(map[types.EntityID]*component.Particle),
		FloatingTexts: make(map[types.EntityID]*component.FloatingText),
		Session:       &component.Session{Phase: component.PhaseMenu},
		removed:       make(map[types.EntityID]struct{}),
	}
}

// NewEntity выделяет следующий id из монотонного счётчика.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// MarkForRemoval помечает сущность на удаление. Повторная пометка
// безопасна. Игрок никогда не помечается: ноль здоровья переводит
// фазу сессии, а не удаляет сущность.
func (w *World) MarkForRemoval(id types.EntityID) {
	if id == w.PlayerID {
		return
	}
	w.removed[id] = struct{}{}
}

// Alive сообщает, что сущность ещё не помечена на удаление.
func (w *World) Alive(id types.EntityID) bool {
	_, marked := w.removed[id]
	return !marked
}

// MarkedCount возвращает число сущностей, ожидающих очистки.
func (w *World) MarkedCount() int {
	return len(w.removed)
}

// Cleanup вычищает все помеченные сущности одним проходом.
// Единственное место, где сущности действительно удаляются.
func (w *World) Cleanup() {
	for id := range w.removed {
		delete(w.Positions, id)
		delete(w.Velocities, id)
		delete(w.Healths, id)
		delete(w.Renderables, id)
		delete(w.Enemies, id)
		delete(w.Bullets, id)
		delete(w.Gems, id)
		delete(w.Particles, id)
		delete(w.FloatingTexts, id)
		delete(w.removed, id)
	}
}
