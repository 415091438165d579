// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/app"
	"go-survivors/internal/config"
)

// HUD рисует полосы здоровья и опыта, счёт и уровень из снимка движка.
type HUD struct {
	face font.Face
}

func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

const (
	barWidth  = 260
	barHeight = 14
	barMargin = 16
)

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	h.drawBar(screen, barMargin, barMargin, snap.HP, snap.MaxHP, config.HPBarColor)
	h.drawBar(screen, barMargin, barMargin+barHeight+6, float64(snap.XP), float64(snap.NextLevelXP), config.XPBarColor)

	text.Draw(screen, fmt.Sprintf("LVL %d", snap.Level), h.face,
		barMargin+barWidth+12, barMargin+11, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("SCORE %d", snap.Score), h.face,
		config.ScreenWidth-140, barMargin+11, config.TextLightColor)
}

func (h *HUD) drawBar(screen *ebiten.Image, x, y float32, value, max float64, c color.Color) {
	vector.DrawFilledRect(screen, x, y, barWidth, barHeight, config.BarBackColor, false)
	if max > 0 {
		ratio := value / max
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
		vector.DrawFilledRect(screen, x, y, float32(barWidth*ratio), barHeight, c, false)
	}
}
