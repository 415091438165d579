// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"go-survivors/internal/app"
	"go-survivors/internal/audio"
	"go-survivors/internal/config"
	"go-survivors/internal/input"
	"go-survivors/internal/state"
)

// shell адаптирует машину состояний к интерфейсу ebiten.Game.
type shell struct {
	sm *state.StateMachine
}

func (s *shell) Update() error {
	s.sm.Update()
	return nil
}

func (s *shell) Draw(screen *ebiten.Image) {
	s.sm.Draw(screen)
}

func (s *shell) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "PRNG seed, 0 means time-based")
	mute := flag.Bool("mute", false, "disable audio cues")
	flag.Parse()

	var cues audio.Player = audio.Nop{}
	if !*mute {
		cues = audio.NewSynthPlayer(eaudio.NewContext(48000))
	}

	game := app.NewGame(input.NewEbitenSource(), cues, *seed)

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, game))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Go Survivors")
	if err := ebiten.RunGame(&shell{sm: sm}); err != nil {
		log.Fatal(err)
	}
}
