// internal/defs/types.go
package defs

// EnemyKind определяет тип врага.
type EnemyKind string

const (
	KindMinion EnemyKind = "minion"
	KindBat    EnemyKind = "bat"
	KindWitch  EnemyKind = "witch"
	KindGolem  EnemyKind = "golem"
)

// EnemyDefinition описывает линейные кривые характеристик одного типа врага.
// Итоговое значение = Base + PerDifficulty * difficulty.
type EnemyDefinition struct {
	HPBase             float64 `yaml:"hpBase"`
	HPPerDifficulty    float64 `yaml:"hpPerDifficulty"`
	SpeedBase          float64 `yaml:"speedBase"`
	SpeedPerDifficulty float64 `yaml:"speedPerDifficulty"`
	Damage             float64 `yaml:"damage"`
	Radius             float64 `yaml:"radius"`
	Score              int     `yaml:"score"`
	GemValue           int     `yaml:"gemValue"`
	BigExplosion       bool    `yaml:"bigExplosion"`
}

// HP возвращает здоровье врага при заданной сложности.
func (d EnemyDefinition) HP(difficulty float64) float64 {
	return d.HPBase + d.HPPerDifficulty*difficulty
}

// Speed возвращает скорость врага при заданной сложности.
func (d EnemyDefinition) Speed(difficulty float64) float64 {
	return d.SpeedBase + d.SpeedPerDifficulty*difficulty
}

// UpgradeID идентифицирует запись каталога апгрейдов.
type UpgradeID string

const (
	UpgradeMissile UpgradeID = "missile"
	UpgradeOrbit   UpgradeID = "orbit"
	UpgradeAura    UpgradeID = "aura"
	UpgradeSpeed   UpgradeID = "speed"
	UpgradeHeal    UpgradeID = "heal"
)

// UpgradeDefinition — запись каталога апгрейдов, предлагаемых на левел-апе.
// Сами дельты характеристик применяются в системе прогрессии.
type UpgradeDefinition struct {
	ID          UpgradeID `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
}

// MissileDefaults — стартовые параметры самонаводящейся ракеты.
type MissileDefaults struct {
	Level        int     `yaml:"level"`
	Damage       float64 `yaml:"damage"`
	Cooldown     float64 `yaml:"cooldown"`
	BulletSpeed  float64 `yaml:"bulletSpeed"`
	BulletLife   int     `yaml:"bulletLife"`
	Penetration  int     `yaml:"penetration"`
	BulletRadius float64 `yaml:"bulletRadius"`
}

// OrbitDefaults — стартовые параметры орбитальных спутников.
type OrbitDefaults struct {
	Damage          float64 `yaml:"damage"`
	OrbitRadius     float64 `yaml:"orbitRadius"`
	SatelliteRadius float64 `yaml:"satelliteRadius"`
	AngularSpeed    float64 `yaml:"angularSpeed"`
}

// AuraDefaults — стартовые параметры пульсирующей ауры.
type AuraDefaults struct {
	Damage   float64 `yaml:"damage"`
	Radius   float64 `yaml:"radius"`
	TickRate int     `yaml:"tickRate"`
}

// WeaponDefaults объединяет стартовые параметры трёх независимых орудий.
type WeaponDefaults struct {
	Missile MissileDefaults `yaml:"missile"`
	Orbit   OrbitDefaults   `yaml:"orbit"`
	Aura    AuraDefaults    `yaml:"aura"`
}
