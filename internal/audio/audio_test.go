// internal/audio/audio_test.go
package audio

import "testing"

func TestNopPlayerIsSilent(t *testing.T) {
	// Должно быть безопасно из любого места, без паник.
	Nop{}.Play(CueShoot)
	Nop{}.Play(CueLevelUp)
}

func TestSynthPlayerWithoutContext(t *testing.T) {
	p := NewSynthPlayer(nil)
	for _, cue := range []Cue{CueShoot, CueExplosionSmall, CueExplosionLarge, CueDash, CueLevelUp} {
		p.Play(cue) // нет устройства вывода — тихий no-op
	}
}

func TestRenderedSamplesNonEmpty(t *testing.T) {
	p := NewSynthPlayer(nil)
	for cue, sample := range p.samples {
		if len(sample) == 0 {
			t.Errorf("cue %d rendered an empty sample", cue)
		}
		if len(sample)%4 != 0 {
			t.Errorf("cue %d sample is not 16-bit stereo aligned: %d bytes", cue, len(sample))
		}
	}
}
