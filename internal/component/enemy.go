// internal/component/enemy.go
package component

import "go-survivors/internal/defs"

// Enemy представляет вражескую сущность. Характеристики фиксируются
// при спавне по кривым сложности из defs.
type Enemy struct {
	Kind         defs.EnemyKind
	Speed        float64
	Damage       float64
	Score        int
	GemValue     int
	BigExplosion bool
}
