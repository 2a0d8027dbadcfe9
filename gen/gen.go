// Package gen provides wave and noise generators.
package gen

import (
	"math"
	"math/rand"
	"time"

	"github.com/kaikalii/hodaun"
)

// Waveform defines the shape of a periodic wave.
type Waveform interface {
	// OneHz returns the amplitude of a 1 Hz wave at the given time in
	// seconds, in [-1, 1].
	OneHz(time float64) float64
	// Loudness is the perceptual loudness of the waveform relative to a
	// sine wave. Wave output is divided by it.
	Loudness() float64
}

// Sine is a sine waveform.
type Sine struct{}

// OneHz implements Waveform.
func (Sine) OneHz(time float64) float64 { return math.Sin(time * 2 * math.Pi) }

// Loudness implements Waveform.
func (Sine) Loudness() float64 { return 1 }

// Square is a square waveform.
type Square struct{}

// OneHz implements Waveform.
func (Square) OneHz(time float64) float64 {
	if int(time*2)%2 == 0 {
		return -1
	}
	return 1
}

// Loudness implements Waveform.
func (Square) Loudness() float64 { return 3 }

// Saw is a sawtooth waveform.
type Saw struct{}

// OneHz implements Waveform.
func (Saw) OneHz(time float64) float64 {
	return 2 * (time - math.Floor(time+0.5))
}

// Loudness implements Waveform.
func (Saw) Loudness() float64 { return 3 }

// Triangle is a triangle waveform.
type Triangle struct{}

// OneHz implements Waveform.
func (Triangle) OneHz(time float64) float64 {
	return 2*math.Abs(Saw{}.OneHz(time)) - 1
}

// Loudness implements Waveform.
func (Triangle) Loudness() float64 { return 1.1 }

// Wave is a mono source that plays a waveform at an automated
// frequency. It ends when the frequency automation ends, and never on
// its own otherwise.
type Wave struct {
	waveform Waveform
	freq     hodaun.Automation
	time     float64
	done     bool
}

// NewWave returns a wave with the given waveform and frequency.
func NewWave(waveform Waveform, freq hodaun.Automation) *Wave {
	return &Wave{waveform: waveform, freq: freq}
}

// SineWave returns a sine wave at the given frequency.
func SineWave(freq hodaun.Automation) *Wave { return NewWave(Sine{}, freq) }

// SquareWave returns a square wave at the given frequency.
func SquareWave(freq hodaun.Automation) *Wave { return NewWave(Square{}, freq) }

// SawWave returns a sawtooth wave at the given frequency.
func SawWave(freq hodaun.Automation) *Wave { return NewWave(Saw{}, freq) }

// TriangleWave returns a triangle wave at the given frequency.
func TriangleWave(freq hodaun.Automation) *Wave { return NewWave(Triangle{}, freq) }

// Next implements hodaun.Source. Phase advances by freq/sampleRate per
// frame and is reduced mod 1.0 to keep it numerically bounded; if the
// sample rate changes mid-stream the accumulated phase carries a small
// error, which is accepted.
func (w *Wave) Next(sampleRate float64) (hodaun.Mono, bool) {
	if w.done {
		return 0, false
	}
	freq, ok := w.freq.Next(sampleRate)
	if !ok {
		w.done = true
		return 0, false
	}
	amp := w.waveform.OneHz(w.time) / w.waveform.Loudness()
	w.time += float64(freq) / sampleRate
	w.time -= math.Floor(w.time)
	return hodaun.Mono(amp), true
}

// Noise is a uniform random noise source in [-1, 1]. It never ends.
type Noise struct {
	rng *rand.Rand
}

// NewNoise returns a noise source seeded from the clock.
func NewNoise() *Noise {
	return NewNoiseSeed(time.Now().UnixNano())
}

// NewNoiseSeed returns a deterministic noise source.
func NewNoiseSeed(seed int64) *Noise {
	return &Noise{rng: rand.New(rand.NewSource(seed))}
}

// Next implements hodaun.Source.
func (n *Noise) Next(float64) (hodaun.Mono, bool) {
	return hodaun.Mono(n.rng.Float64()*2 - 1), true
}
