// internal/system/render.go
package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
)

// RenderSystem рисует мир относительно камеры. Читает состояние только
// на чтение и не мутирует движок; сетка даёт ощущение движения по
// бесконечной плоскости.
type RenderSystem struct {
	world *entity.World
	face  font.Face
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world, face: basicfont.Face7x13}
}

const gridStep = 64

// Draw отрисовывает один кадр мира. cameraX/cameraY — мировые координаты
// левого верхнего угла экрана.
func (s *RenderSystem) Draw(screen *ebiten.Image, cameraX, cameraY float64) {
	screen.Fill(config.BackgroundColor)
	s.drawGrid(screen, cameraX, cameraY)

	p := s.world.Player
	playerPos := s.world.Positions[s.world.PlayerID]
	if p == nil || playerPos == nil {
		return
	}

	// Аура под остальными сущностями.
	if p.Aura.Level > 0 {
		vector.DrawFilledCircle(screen,
			float32(playerPos.X-cameraX), float32(playerPos.Y-cameraY),
			float32(p.Aura.Radius), config.AuraColor, true)
	}

	for _, tp := range p.Trail {
		c := config.TrailColor
		c.A = uint8(tp.Alpha * 160)
		vector.DrawFilledCircle(screen,
			float32(tp.X-cameraX), float32(tp.Y-cameraY),
			float32(config.PlayerRadius*tp.Alpha), c, true)
	}

	for id := range s.world.Gems {
		s.drawEntity(screen, id, cameraX, cameraY)
	}
	for id := range s.world.Enemies {
		s.drawEntity(screen, id, cameraX, cameraY)
	}
	for id := range s.world.Bullets {
		s.drawEntity(screen, id, cameraX, cameraY)
	}

	// Игрок поверх врагов.
	vector.DrawFilledCircle(screen,
		float32(playerPos.X-cameraX), float32(playerPos.Y-cameraY),
		float32(config.PlayerRadius), config.PlayerColor, true)

	if p.Orbit.Level > 0 {
		for i := 0; i < p.Orbit.Count; i++ {
			angle := p.Orbit.Angle + float64(i)*2*math.Pi/float64(p.Orbit.Count)
			sx := playerPos.X + math.Cos(angle)*p.Orbit.OrbitRadius
			sy := playerPos.Y + math.Sin(angle)*p.Orbit.OrbitRadius
			vector.DrawFilledCircle(screen,
				float32(sx-cameraX), float32(sy-cameraY),
				float32(p.Orbit.SatelliteRadius), config.SatelliteColor, true)
		}
	}

	for id, particle := range s.world.Particles {
		pos := s.world.Positions[id]
		if pos == nil {
			continue
		}
		c := particle.Color
		c.A = uint8(255 * particle.Life / particle.MaxLife)
		vector.DrawFilledCircle(screen,
			float32(pos.X-cameraX), float32(pos.Y-cameraY), 3, c, true)
	}

	for id, ft := range s.world.FloatingTexts {
		pos := s.world.Positions[id]
		if pos == nil {
			continue
		}
		text.Draw(screen, ft.Text, s.face,
			int(pos.X-cameraX), int(pos.Y-cameraY), ft.Color)
	}
}

// drawEntity рисует сущность по её Renderable-компоненту.
func (s *RenderSystem) drawEntity(screen *ebiten.Image, id types.EntityID, cameraX, cameraY float64) {
	pos := s.world.Positions[id]
	r := s.world.Renderables[id]
	if pos == nil || r == nil {
		return
	}
	vector.DrawFilledCircle(screen,
		float32(pos.X-cameraX), float32(pos.Y-cameraY),
		float32(r.Radius), r.Color, true)
}

func (s *RenderSystem) drawGrid(screen *ebiten.Image, cameraX, cameraY float64) {
	startX := math.Floor(cameraX/gridStep) * gridStep
	startY := math.Floor(cameraY/gridStep) * gridStep
	for x := startX; x < cameraX+config.ScreenWidth+gridStep; x += gridStep {
		vector.StrokeLine(screen,
			float32(x-cameraX), 0,
			float32(x-cameraX), config.ScreenHeight,
			1, config.GridColor, false)
	}
	for y := startY; y < cameraY+config.ScreenHeight+gridStep; y += gridStep {
		vector.StrokeLine(screen,
			0, float32(y-cameraY),
			config.ScreenWidth, float32(y-cameraY),
			1, config.GridColor, false)
	}
}
