// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/app"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/system"
	"go-survivors/internal/ui"
)

// GameState — игровой экран: тикает движок, рисует мир, HUD и оверлеи
// левел-апа и поражения.
type GameState struct {
	sm           *StateMachine
	game         *app.Game
	render       *system.RenderSystem
	hud          *ui.HUD
	upgradePanel *ui.UpgradePanel
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	return &GameState{
		sm:           sm,
		game:         game,
		render:       system.NewRenderSystem(game.World),
		hud:          ui.NewHUD(),
		upgradePanel: ui.NewUpgradePanel(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update() {
	switch g.game.Phase() {
	case component.PhasePlaying:
		g.game.Update()

	case component.PhaseLevelUp:
		offered := g.game.World.Session.Offered
		keys := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}
		for i, key := range keys {
			if i < len(offered) && inpututil.IsKeyJustPressed(key) {
				g.game.SelectUpgrade(offered[i])
				break
			}
		}

	case component.PhaseGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.game.StartSession()
			// Мир пересоздан — рендерер должен смотреть на новый.
			g.render = system.NewRenderSystem(g.game.World)
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.render.Draw(screen, g.game.CameraX, g.game.CameraY)
	g.hud.Draw(screen, g.game.Snapshot())

	switch g.game.Phase() {
	case component.PhaseLevelUp:
		g.upgradePanel.Draw(screen, g.game.Offered())
	case component.PhaseGameOver:
		face := basicfont.Face7x13
		text.Draw(screen, "GAME OVER", face,
			config.ScreenWidth/2-35, config.ScreenHeight/2-10, config.TextLightColor)
		text.Draw(screen, "PRESS R TO RESTART", face,
			config.ScreenWidth/2-65, config.ScreenHeight/2+16, config.TextLightColor)
	}
}

func (g *GameState) Exit() {}
