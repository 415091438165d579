// internal/component/effects.go
package component

import "image/color"

// Particle — чисто косметическая частица. Скорость затухает каждый тик.
type Particle struct {
	Life    int
	MaxLife int
	Color   color.RGBA
}

// FloatingText — всплывающая надпись (числа урона, подбор гема).
// Дрейфует вверх и исчезает по истечении Life.
type FloatingText struct {
	Text  string
	Color color.RGBA
	Life  int
}
