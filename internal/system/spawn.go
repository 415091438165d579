// internal/system/spawn.go
package system

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/utils"
)

// SpawnSystem — директор спавна: по мере игры интервал между врагами
// сжимается к полу в 5 тиков, а бестиарий открывается ступенями сложности.
type SpawnSystem struct {
	world *entity.World
	rng   *utils.PRNGService
	timer int
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{world: world, rng: rng}
}

// Difficulty возвращает скаляр сложности: единица на каждые 600 тиков.
func Difficulty(tick int) float64 {
	return float64(tick) / config.DifficultyTicks
}

func (s *SpawnSystem) Update() {
	s.timer++
	interval := config.SpawnBaseInterval - s.world.Tick/config.SpawnRampTicks
	if interval < config.SpawnMinInterval {
		interval = config.SpawnMinInterval
	}
	if s.timer > interval {
		s.spawnEnemy()
		s.timer = 0
	}
}

func (s *SpawnSystem) spawnEnemy() {
	playerPos := s.world.Positions[s.world.PlayerID]
	if playerPos == nil {
		return
	}

	difficulty := Difficulty(s.world.Tick)
	kind := s.pickKind(difficulty)
	def, ok := defs.EnemyLibrary[kind]
	if !ok {
		return
	}

	// Кольцо [400, 700) от игрока: гарантированно за экраном.
	angle := s.rng.Float64() * 2 * math.Pi
	dist := config.SpawnDistanceMin + s.rng.Float64()*config.SpawnDistanceRange

	id := s.world.NewEntity()
	s.world.Positions[id] = &component.Position{
		X: playerPos.X + math.Cos(angle)*dist,
		Y: playerPos.Y + math.Sin(angle)*dist,
	}
	hp := def.HP(difficulty)
	s.world.Healths[id] = &component.Health{Value: hp, Max: hp}
	s.world.Renderables[id] = &component.Renderable{
		Color:  config.EnemyColors[string(kind)],
		Radius: def.Radius,
	}
	s.world.Enemies[id] = &component.Enemy{
		Kind:         kind,
		Speed:        def.Speed(difficulty),
		Damage:       def.Damage,
		Score:        def.Score,
		GemValue:     def.GemValue,
		BigExplosion: def.BigExplosion,
	}
}

// pickKind выбирает тип врага по одному броску. Редкие ярусы проверяются
// первыми и достижимы только после своего порога сложности: бестиарий
// открывается монотонно, это не независимые вероятности.
func (s *SpawnSystem) pickKind(difficulty float64) defs.EnemyKind {
	draw := s.rng.Float64()
	switch {
	case difficulty > 5 && draw > 0.98:
		return defs.KindGolem
	case difficulty > 3 && draw > 0.9:
		return defs.KindWitch
	case difficulty > 1 && draw > 0.8:
		return defs.KindBat
	default:
		return defs.KindMinion
	}
}
