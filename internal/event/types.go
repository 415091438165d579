// internal/event/types.go
package event

import "go-survivors/internal/types"

const (
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен (Data: EnemyKilledData)
	GemCollected    EventType = "GemCollected"    // Гем подобран (Data: GemCollectedData)
	PlayerLeveledUp EventType = "PlayerLeveledUp" // Игрок получил уровень (Data: int — новый уровень)
	PlayerDied      EventType = "PlayerDied"      // Здоровье игрока упало до нуля
)

// EnemyKilledData сопровождает событие EnemyKilled.
// Компоненты врага ещё читаемы до конца тика: очистка отложена.
type EnemyKilledData struct {
	ID types.EntityID
}

// GemCollectedData сопровождает событие GemCollected.
type GemCollectedData struct {
	Value int
	X, Y  float64
}
