// internal/system/helpers_test.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/input"
	"go-survivors/internal/types"
)

// fakeInput — программируемый источник ввода для тестов.
type fakeInput struct {
	held map[input.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: make(map[input.Key]bool)}
}

func (f *fakeInput) IsHeld(k input.Key) bool { return f.held[k] }

func (f *fakeInput) press(keys ...input.Key) {
	for _, k := range keys {
		f.held[k] = true
	}
}

// captureListener копит все полученные события.
type captureListener struct {
	events []event.Event
}

func (c *captureListener) OnEvent(e event.Event) {
	c.events = append(c.events, e)
}

func (c *captureListener) count(t event.EventType) int {
	n := 0
	for _, e := range c.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// newPlayingWorld собирает мир с игроком в начале координат, без орудий.
func newPlayingWorld() *entity.World {
	defs.MustLoad()
	w := entity.NewWorld()
	w.Session.Phase = component.PhasePlaying
	id := w.NewEntity()
	w.PlayerID = id
	w.Positions[id] = &component.Position{}
	w.Healths[id] = &component.Health{Value: config.PlayerMaxHP, Max: config.PlayerMaxHP}
	w.Renderables[id] = &component.Renderable{Color: config.PlayerColor, Radius: config.PlayerRadius}
	w.Player = &component.Player{
		Speed:           config.PlayerSpeed,
		Level:           config.InitialLevel,
		NextLevelXP:     config.InitialXPThreshold,
		MaxDashCooldown: config.DashCooldownTicks,
	}
	return w
}

// addEnemy заводит неподвижного миньона: скорость нулевая, чтобы тест
// сам управлял геометрией столкновения.
func addEnemy(w *entity.World, x, y, hp float64) types.EntityID {
	id := w.NewEntity()
	w.Positions[id] = &component.Position{X: x, Y: y}
	w.Healths[id] = &component.Health{Value: hp, Max: hp}
	w.Renderables[id] = &component.Renderable{Radius: 12}
	w.Enemies[id] = &component.Enemy{
		Kind:     defs.KindMinion,
		Speed:    0,
		Damage:   5,
		Score:    10,
		GemValue: 5,
	}
	return id
}

func addGem(w *entity.World, x, y float64, value int) types.EntityID {
	id := w.NewEntity()
	w.Positions[id] = &component.Position{X: x, Y: y}
	w.Gems[id] = &component.Gem{Value: value}
	w.Renderables[id] = &component.Renderable{Radius: config.GemRadius}
	return id
}
