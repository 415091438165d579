// internal/app/game.go
package app

import (
	"go-survivors/internal/audio"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/input"
	"go-survivors/internal/system"
	"go-survivors/internal/utils"
)

// Snapshot — срез витальных показателей для HUD. Обновляется раз в
// несколько тиков: презентации точность в каждый тик не нужна.
type Snapshot struct {
	Score       int
	HP          float64
	MaxHP       float64
	XP          int
	NextLevelXP int
	Level       int
}

// Game — корневой агрегат: мир, системы, диспетчер, PRNG и команды
// сессии. Один вызов Update продвигает симуляцию ровно на один тик.
type Game struct {
	World *entity.World

	MovementSystem    *system.MovementSystem
	SpawnSystem       *system.SpawnSystem
	WeaponSystem      *system.WeaponSystem
	CombatSystem      *system.CombatSystem
	CollisionSystem   *system.CollisionSystem
	ProgressionSystem *system.ProgressionSystem
	EffectsSystem     *system.EffectsSystem
	EventDispatcher   *event.Dispatcher

	Rng *utils.PRNGService

	CameraX, CameraY float64

	input    input.Source
	audio    audio.Player
	seed     int64
	snapshot Snapshot
}

// NewGame собирает движок в фазе меню. Сид 0 означает недетерминированный
// запуск; тесты передают фиксированный сид.
func NewGame(src input.Source, cues audio.Player, seed int64) *Game {
	defs.MustLoad()
	g := &Game{
		input: src,
		audio: cues,
		seed:  seed,
	}
	g.rebuild()
	return g
}

// rebuild создаёт свежий мир и привязанные к нему системы. С точки
// зрения движка это атомарная подмена состояния, а не мутация на месте.
func (g *Game) rebuild() {
	world := entity.NewWorld()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(g.seed)

	g.World = world
	g.EventDispatcher = dispatcher
	g.Rng = rng
	g.CombatSystem = system.NewCombatSystem(world, dispatcher)
	g.EffectsSystem = system.NewEffectsSystem(world, rng)
	g.MovementSystem = system.NewMovementSystem(world, g.input, g.audio)
	g.SpawnSystem = system.NewSpawnSystem(world, rng)
	g.WeaponSystem = system.NewWeaponSystem(world, g.CombatSystem, g.audio)
	g.CollisionSystem = system.NewCollisionSystem(world, g.CombatSystem, g.EffectsSystem, dispatcher)
	g.ProgressionSystem = system.NewProgressionSystem(world, rng, dispatcher, g.audio)

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.EnemyKilled, listener)
	dispatcher.Subscribe(event.GemCollected, listener)
	dispatcher.Subscribe(event.PlayerDied, listener)
}

// StartSession начинает новую сессию. Легальна из меню и после
// поражения; в остальных фазах — no-op.
func (g *Game) StartSession() {
	phase := g.World.Session.Phase
	if phase != component.PhaseMenu && phase != component.PhaseGameOver {
		return
	}
	g.rebuild()
	g.createPlayerEntity()
	g.World.Session.Phase = component.PhasePlaying
	g.refreshSnapshot()
}

// SelectUpgrade применяет один из трёх предложенных апгрейдов и
// возобновляет игру. Чужая фаза или id вне предложения игнорируются.
func (g *Game) SelectUpgrade(id defs.UpgradeID) {
	session := g.World.Session
	if session.Phase != component.PhaseLevelUp {
		return
	}
	offered := false
	for _, o := range session.Offered {
		if o == id {
			offered = true
			break
		}
	}
	if !offered {
		return
	}
	g.ProgressionSystem.ApplyUpgrade(id)
	session.Offered = nil
	session.Phase = component.PhasePlaying
}

// Update продвигает симуляцию на один тик. Вне PhasePlaying мир
// заморожен: продвигается только при активной игре.
func (g *Game) Update() {
	if g.World.Session.Phase != component.PhasePlaying {
		return
	}

	g.World.Tick++
	g.MovementSystem.Update()
	g.WeaponSystem.Update()
	g.SpawnSystem.Update()
	g.CollisionSystem.Update()
	g.ProgressionSystem.Update()
	g.EffectsSystem.Update()
	g.World.Cleanup()

	g.updateCamera()
	if g.World.Tick%config.SnapshotInterval == 0 {
		g.refreshSnapshot()
	}
}

// Snapshot возвращает последний срез для HUD.
func (g *Game) Snapshot() Snapshot {
	return g.snapshot
}

// Offered возвращает определения текущего предложения левел-апа.
func (g *Game) Offered() []defs.UpgradeDefinition {
	result := make([]defs.UpgradeDefinition, 0, len(g.World.Session.Offered))
	for _, id := range g.World.Session.Offered {
		for _, def := range defs.UpgradeCatalog {
			if def.ID == id {
				result = append(result, def)
				break
			}
		}
	}
	return result
}

func (g *Game) Phase() component.Phase {
	return g.World.Session.Phase
}

func (g *Game) updateCamera() {
	if pos := g.World.Positions[g.World.PlayerID]; pos != nil {
		g.CameraX = pos.X - config.ScreenWidth/2
		g.CameraY = pos.Y - config.ScreenHeight/2
	}
}

func (g *Game) refreshSnapshot() {
	p := g.World.Player
	if p == nil {
		g.snapshot = Snapshot{}
		return
	}
	snap := Snapshot{
		Score:       g.World.Score,
		XP:          p.XP,
		NextLevelXP: p.NextLevelXP,
		Level:       p.Level,
	}
	if health := g.World.Healths[g.World.PlayerID]; health != nil {
		snap.HP = health.Value
		snap.MaxHP = health.Max
	}
	g.snapshot = snap
}

// createPlayerEntity заводит единственную сущность игрока со стартовыми
// орудиями из defs. Игрок живёт до конца сессии и не удаляется.
func (g *Game) createPlayerEntity() {
	w := defs.Weapons
	id := g.World.NewEntity()
	g.World.PlayerID = id
	g.World.Positions[id] = &component.Position{X: 0, Y: 0}
	g.World.Healths[id] = &component.Health{Value: config.PlayerMaxHP, Max: config.PlayerMaxHP}
	g.World.Renderables[id] = &component.Renderable{Color: config.PlayerColor, Radius: config.PlayerRadius}
	g.World.Player = &component.Player{
		Speed:           config.PlayerSpeed,
		Level:           config.InitialLevel,
		NextLevelXP:     config.InitialXPThreshold,
		MaxDashCooldown: config.DashCooldownTicks,
		Missile: component.MissileWeapon{
			Level:        w.Missile.Level,
			Damage:       w.Missile.Damage,
			MaxCooldown:  w.Missile.Cooldown,
			Cooldown:     w.Missile.Cooldown,
			BulletSpeed:  w.Missile.BulletSpeed,
			BulletLife:   w.Missile.BulletLife,
			Penetration:  w.Missile.Penetration,
			BulletRadius: w.Missile.BulletRadius,
		},
		Orbit: component.OrbitWeapon{
			Damage:          w.Orbit.Damage,
			OrbitRadius:     w.Orbit.OrbitRadius,
			SatelliteRadius: w.Orbit.SatelliteRadius,
			AngularSpeed:    w.Orbit.AngularSpeed,
		},
		Aura: component.AuraWeapon{
			Damage:   w.Aura.Damage,
			Radius:   w.Aura.Radius,
			TickRate: w.Aura.TickRate,
		},
	}
}

// GameEventListener обрабатывает события, важные для основного цикла:
// счёт и трофеи за убийства, звуковые сигналы, конец сессии.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.EnemyKilled:
		data, ok := e.Data.(event.EnemyKilledData)
		if !ok {
			return
		}
		enemy := g.World.Enemies[data.ID]
		pos := g.World.Positions[data.ID]
		if enemy == nil || pos == nil {
			return
		}
		g.World.Score += enemy.Score
		g.spawnGem(pos.X, pos.Y, enemy.GemValue)
		g.EffectsSystem.SpawnBurst(pos.X, pos.Y, config.EnemyColors[string(enemy.Kind)])
		if enemy.BigExplosion {
			g.audio.Play(audio.CueExplosionLarge)
		} else {
			g.audio.Play(audio.CueExplosionSmall)
		}
	case event.GemCollected:
		if data, ok := e.Data.(event.GemCollectedData); ok {
			g.EffectsSystem.SpawnText(data.X, data.Y, "+XP", config.PickupTextColor)
		}
	case event.PlayerDied:
		g.World.Session.Phase = component.PhaseGameOver
	}
}

func (g *Game) spawnGem(x, y float64, value int) {
	id := g.World.NewEntity()
	g.World.Positions[id] = &component.Position{X: x, Y: y}
	g.World.Gems[id] = &component.Gem{Value: value}
	g.World.Renderables[id] = &component.Renderable{Color: config.GemColor, Radius: config.GemRadius}
}
