// internal/component/bullet.go
package component

// Bullet представляет летящий снаряд. Умирает по истечении Life
// или когда исчерпан запас пробития.
type Bullet struct {
	Damage      float64
	Life        int // оставшиеся тики жизни
	Penetration int // сколько врагов ещё может задеть
}
