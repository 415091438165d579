// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/app"
	"go-survivors/internal/config"
)

// MenuState — стартовый экран. Пробел запускает сессию.
type MenuState struct {
	sm   *StateMachine
	game *app.Game
}

func NewMenuState(sm *StateMachine, game *app.Game) *MenuState {
	return &MenuState{sm: sm, game: game}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.game.StartSession()
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	text.Draw(screen, "GO SURVIVORS", face,
		config.ScreenWidth/2-50, config.ScreenHeight/2-20, config.TextLightColor)
	text.Draw(screen, "PRESS SPACE TO START", face,
		config.ScreenWidth/2-75, config.ScreenHeight/2+10, config.TextLightColor)
}

func (m *MenuState) Exit() {}
