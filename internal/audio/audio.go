// internal/audio/audio.go
package audio

// Cue — дискретный звуковой сигнал движка. Воспроизведение best-effort:
// вызов никогда не блокирует тик и не возвращает ошибку.
type Cue int

const (
	CueShoot Cue = iota
	CueExplosionSmall
	CueExplosionLarge
	CueDash
	CueLevelUp
)

// Player проигрывает сигналы. Реализации обязаны быть неблокирующими.
type Player interface {
	Play(c Cue)
}

// Nop — заглушка для тестов и безголового запуска.
type Nop struct{}

func (Nop) Play(Cue) {}
