// internal/system/progression.go
package system

import (
	"go-survivors/internal/audio"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
)

// ProgressionSystem копит опыт с подобранных гемов и ведёт левел-апы:
// перенос излишка, рост порога ×1.3, розыгрыш трёх различных апгрейдов
// из каталога и применение выбранного.
type ProgressionSystem struct {
	world      *entity.World
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	audio      audio.Player
}

func NewProgressionSystem(world *entity.World, rng *utils.PRNGService, dispatcher *event.Dispatcher, cues audio.Player) *ProgressionSystem {
	ps := &ProgressionSystem{world: world, rng: rng, dispatcher: dispatcher, audio: cues}
	dispatcher.Subscribe(event.GemCollected, ps)
	return ps
}

// OnEvent засчитывает стоимость гема в опыт игрока.
func (s *ProgressionSystem) OnEvent(e event.Event) {
	if e.Type != event.GemCollected {
		return
	}
	data, ok := e.Data.(event.GemCollectedData)
	if !ok {
		return
	}
	if p := s.world.Player; p != nil {
		p.XP += data.Value
	}
}

// Update проверяет пересечение порога. На левел-апе симуляция замирает:
// фаза переходит в PhaseLevelUp до выбора апгрейда.
func (s *ProgressionSystem) Update() {
	p := s.world.Player
	if p == nil {
		return
	}
	if p.XP < p.NextLevelXP {
		return
	}

	p.Level++
	p.XP -= p.NextLevelXP // излишек переносится, не обнуляется
	p.NextLevelXP = config.CalculateNextLevelXP(p.NextLevelXP)

	s.world.Session.Phase = component.PhaseLevelUp
	s.world.Session.Offered = s.DrawUpgrades()
	s.audio.Play(audio.CueLevelUp)
	s.dispatcher.Dispatch(event.Event{Type: event.PlayerLeveledUp, Data: p.Level})
}

// DrawUpgrades разыгрывает 3 различных апгрейда без возврата:
// перемешивание каталога и взятие первых трёх. Без весов.
func (s *ProgressionSystem) DrawUpgrades() []defs.UpgradeID {
	ids := make([]defs.UpgradeID, len(defs.UpgradeCatalog))
	for i, u := range defs.UpgradeCatalog {
		ids[i] = u.ID
	}
	s.rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	return ids[:config.UpgradeChoices]
}

// ApplyUpgrade применяет фиксированную дельту характеристик. Орудия
// независимы: прокачка одного не трогает поля других.
func (s *ProgressionSystem) ApplyUpgrade(id defs.UpgradeID) {
	p := s.world.Player
	if p == nil {
		return
	}
	switch id {
	case defs.UpgradeMissile:
		p.Missile.Level++
		p.Missile.Damage += 10
		p.Missile.MaxCooldown *= 0.85
	case defs.UpgradeOrbit:
		p.Orbit.Level++
		p.Orbit.Count++
		p.Orbit.Damage += 5
	case defs.UpgradeAura:
		p.Aura.Level++
		p.Aura.Radius += 15
		p.Aura.Damage += 2
	case defs.UpgradeSpeed:
		p.Speed += 0.5
		p.MaxDashCooldown -= 10
		if p.MaxDashCooldown < config.MinDashCooldown {
			p.MaxDashCooldown = config.MinDashCooldown
		}
	case defs.UpgradeHeal:
		health := s.world.Healths[s.world.PlayerID]
		if health == nil {
			return
		}
		health.Max += 20
		health.Value += health.Max * 0.3
		if health.Value > health.Max {
			health.Value = health.Max
		}
	}
}
