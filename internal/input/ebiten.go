// internal/input/ebiten.go
package input

import "github.com/hajimehoshi/ebiten/v2"

// EbitenSource — источник ввода поверх клавиатуры ebiten.
// WASD и стрелки для движения, Shift или пробел для рывка.
type EbitenSource struct{}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

func (s *EbitenSource) IsHeld(k Key) bool {
	switch k {
	case KeyUp:
		return ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	case KeyDown:
		return ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	case KeyLeft:
		return ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	case KeyRight:
		return ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	case KeyDash:
		return ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)
	}
	return false
}
