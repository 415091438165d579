// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	TicksPerSecond = 60
	MaxDeltaTime   = 0.06

	// Игрок
	PlayerMaxHP  = 100.0
	PlayerSpeed  = 3.0
	PlayerRadius = 14.0

	// Рывок
	DashSpeed         = 12.0
	DashDurationTicks = 10
	DashCooldownTicks = 90
	MinDashCooldown   = 30
	DashKillDamage    = 9999.0

	// След от рывка: шаг затухания прозрачности за тик
	TrailFade = 0.1

	// Спавн врагов
	DifficultyTicks    = 600 // тиков на единицу сложности
	SpawnBaseInterval  = 40
	SpawnRampTicks     = 300
	SpawnMinInterval   = 5
	SpawnDistanceMin   = 400.0
	SpawnDistanceRange = 300.0

	// Столкновения
	SeparationInterval = 5 // расталкивание врагов раз в N тиков
	SeparationBBox     = 20.0
	SeparationPush     = 0.1
	ContactKnockback   = 6.0

	// Гемы
	GemRadius         = 6.0
	GemMagnetBase     = 80.0
	GemMagnetPerLevel = 10.0
	GemEase           = 0.12

	// Прогрессия
	InitialLevel       = 1
	InitialXPThreshold = 50
	UpgradeChoices     = 3

	// Дальность поиска цели самонаводящейся ракеты
	MissileTargetRange = 500.0

	// Эффекты
	KillBurstParticles = 10
	FloatingTextLife   = 40
	FloatingTextDrift  = 0.8
	ParticleDrag       = 0.9

	// Снимок для HUD обновляется раз в N тиков
	SnapshotInterval = 5
)

// CalculateNextLevelXP возвращает порог опыта для следующего уровня.
// Порог строго растёт: floor(current * 1.3).
func CalculateNextLevelXP(current int) int {
	return int(float64(current) * 1.3)
}

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridColor       = color.RGBA{40, 40, 55, 255}
	PlayerColor     = color.RGBA{90, 200, 250, 255}
	TrailColor      = color.RGBA{90, 200, 250, 255}
	BulletColor     = color.RGBA{255, 240, 120, 255}
	GemColor        = color.RGBA{80, 250, 160, 255}
	SatelliteColor  = color.RGBA{200, 160, 255, 255}
	AuraColor       = color.RGBA{120, 90, 220, 60}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	DamageTextColor = color.RGBA{255, 120, 90, 255}
	PickupTextColor = color.RGBA{80, 250, 160, 255}
	HPBarColor      = color.RGBA{220, 60, 60, 255}
	XPBarColor      = color.RGBA{80, 160, 250, 255}
	BarBackColor    = color.RGBA{60, 60, 75, 255}

	EnemyColors = map[string]color.RGBA{
		"minion": {220, 70, 70, 255},
		"bat":    {170, 110, 240, 255},
		"witch":  {80, 220, 120, 255},
		"golem":  {160, 120, 80, 255},
	}
)
