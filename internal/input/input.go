// internal/input/input.go
package input

// Key — логическая клавиша движка. Движок опрашивает источник один раз
// за тик; очереди событий и порядок нажатий не нужны.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyDash
)

// Source отвечает на вопрос "удерживается ли сейчас клавиша K".
type Source interface {
	IsHeld(k Key) bool
}
