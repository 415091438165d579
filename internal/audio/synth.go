// internal/audio/synth.go
package audio

import (
	"math"
	"math/rand"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 48000

// SynthPlayer синтезирует короткие PCM-сэмплы для каждого сигнала один раз
// при создании и проигрывает их через аудиоконтекст ebiten. Ошибок наружу
// нет: если устройство вывода недоступно, вызовы Play просто ничего не делают.
type SynthPlayer struct {
	ctx     *eaudio.Context
	samples map[Cue][]byte
}

// NewSynthPlayer создает проигрыватель поверх готового контекста.
// Контекст может быть создан только один раз на процесс.
func NewSynthPlayer(ctx *eaudio.Context) *SynthPlayer {
	p := &SynthPlayer{
		ctx:     ctx,
		samples: make(map[Cue][]byte),
	}
	p.samples[CueShoot] = renderTone(880, 520, 0.07, 0.25)
	p.samples[CueExplosionSmall] = renderNoise(0.18, 0.35)
	p.samples[CueExplosionLarge] = renderNoise(0.45, 0.5)
	p.samples[CueDash] = renderTone(320, 760, 0.12, 0.3)
	p.samples[CueLevelUp] = renderTone(440, 1320, 0.35, 0.3)
	return p
}

// Play запускает сэмпл и не ждёт его окончания.
func (p *SynthPlayer) Play(c Cue) {
	if p.ctx == nil {
		return
	}
	sample, ok := p.samples[c]
	if !ok {
		return
	}
	player := p.ctx.NewPlayerFromBytes(sample)
	player.Play()
}

// renderTone рендерит синусоиду со скольжением частоты from -> to
// и экспоненциальным затуханием. Формат: 16-bit LE, стерео.
func renderTone(from, to float64, duration, volume float64) []byte {
	n := int(duration * sampleRate)
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := from + (to-from)*t
		phase += 2 * math.Pi * freq / sampleRate
		env := math.Exp(-4 * t)
		v := int16(math.Sin(phase) * env * volume * math.MaxInt16)
		writeSample(buf, i, v)
	}
	return buf
}

// renderNoise рендерит затухающий шум для взрывов.
func renderNoise(duration, volume float64) []byte {
	n := int(duration * sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		env := math.Exp(-5 * t)
		v := int16((rand.Float64()*2 - 1) * env * volume * math.MaxInt16)
		writeSample(buf, i, v)
	}
	return buf
}

func writeSample(buf []byte, i int, v int16) {
	buf[i*4] = byte(v)
	buf[i*4+1] = byte(v >> 8)
	buf[i*4+2] = byte(v)
	buf[i*4+3] = byte(v >> 8)
}
