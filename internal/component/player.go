// internal/component/player.go
package component

// DashState — явное состояние мини-автомата рывка.
type DashState int

const (
	DashIdle DashState = iota
	DashDashing
)

// TrailPoint — точка следа с затухающей прозрачностью.
type TrailPoint struct {
	X, Y  float64
	Alpha float64
}

// MissileWeapon — состояние самонаводящейся ракеты.
// Кулдауны в тиках; MaxCooldown хранится как float64,
// потому что апгрейд умножает его на 0.85.
type MissileWeapon struct {
	Level        int
	Damage       float64
	Cooldown     float64
	MaxCooldown  float64
	BulletSpeed  float64
	BulletLife   int
	Penetration  int
	BulletRadius float64
}

// OrbitWeapon — состояние орбитальных спутников.
type OrbitWeapon struct {
	Level           int
	Damage          float64
	Count           int
	Angle           float64
	OrbitRadius     float64
	SatelliteRadius float64
	AngularSpeed    float64
}

// AuraWeapon — состояние пульсирующей ауры.
type AuraWeapon struct {
	Level    int
	Damage   float64
	Radius   float64
	Ticker   int
	TickRate int
}

// Player хранит состояние игрока: движение, рывок, прогрессию и связку
// из трёх независимых орудий. Прокачка одного орудия никогда не трогает
// поля другого. Здоровье лежит в Health-компоненте сущности игрока.
type Player struct {
	Speed float64

	XP          int
	Level       int
	NextLevelXP int

	DashState       DashState
	DashTicks       int // оставшиеся тики рывка
	DashCooldown    int
	MaxDashCooldown int

	Trail []TrailPoint

	Missile MissileWeapon
	Orbit   OrbitWeapon
	Aura    AuraWeapon
}
