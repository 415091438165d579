// internal/ui/upgrade_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/config"
	"go-survivors/internal/defs"
)

// UpgradePanel рисует три карточки предложения левел-апа.
// Выбор делается клавишами 1..3; сам выбор обрабатывает состояние игры.
type UpgradePanel struct {
	face font.Face
}

func NewUpgradePanel() *UpgradePanel {
	return &UpgradePanel{face: basicfont.Face7x13}
}

const (
	cardWidth  = 300
	cardHeight = 120
	cardGap    = 24
)

func (p *UpgradePanel) Draw(screen *ebiten.Image, offered []defs.UpgradeDefinition) {
	total := len(offered)*cardWidth + (len(offered)-1)*cardGap
	startX := (config.ScreenWidth - total) / 2
	y := (config.ScreenHeight - cardHeight) / 2

	text.Draw(screen, "LEVEL UP - CHOOSE AN UPGRADE", p.face,
		config.ScreenWidth/2-100, y-30, config.TextLightColor)

	for i, def := range offered {
		x := startX + i*(cardWidth+cardGap)
		vector.DrawFilledRect(screen, float32(x), float32(y), cardWidth, cardHeight, config.BarBackColor, false)
		vector.StrokeRect(screen, float32(x), float32(y), cardWidth, cardHeight, 2, config.TextLightColor, false)

		text.Draw(screen, fmt.Sprintf("[%d] %s", i+1, def.Name), p.face,
			x+16, y+28, config.TextLightColor)
		text.Draw(screen, def.Description, p.face,
			x+16, y+56, config.TextLightColor)
	}
}
