package gen_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaikalii/hodaun"
	"github.com/kaikalii/hodaun/gen"
	"github.com/kaikalii/hodaun/internal/audiotest"
)

const sampleRate = 44100.0

func TestSineWaveStartsAtZero(t *testing.T) {
	wave := gen.SineWave(hodaun.Constant(440))
	frame, ok := wave.Next(sampleRate)
	require.True(t, ok)
	assert.InDelta(t, 0, float64(frame), 1e-9)
}

func TestWaveShapes(t *testing.T) {
	// one cycle of a 1 Hz wave sampled at 4 Hz
	tests := []struct {
		name     string
		waveform gen.Waveform
		expected []float64
	}{
		{name: "sine", waveform: gen.Sine{}, expected: []float64{0, 1, 0, -1}},
		{name: "square", waveform: gen.Square{}, expected: []float64{-1.0 / 3, -1.0 / 3, 1.0 / 3, 1.0 / 3}},
		{name: "saw", waveform: gen.Saw{}, expected: []float64{0, 0.5 / 3, -1.0 / 3, -0.5 / 3}},
		{name: "triangle", waveform: gen.Triangle{}, expected: []float64{-1 / 1.1, 0, 1 / 1.1, 0}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			wave := gen.NewWave(test.waveform, hodaun.Constant(1))
			for i, expected := range test.expected {
				frame, ok := wave.Next(4)
				require.True(t, ok)
				assert.InDelta(t, expected, float64(frame), 1e-9, "frame %d", i)
			}
		})
	}
}

func TestWaveEndsWithFrequencyAutomation(t *testing.T) {
	wave := gen.SineWave(audiotest.NewSeq(440, 440))
	frames := audiotest.Drain[hodaun.Mono](wave, sampleRate, 10)
	assert.Len(t, frames, 2)
}

func TestWavePhaseStaysBounded(t *testing.T) {
	wave := gen.SawWave(hodaun.Constant(10000))
	for i := 0; i < 100000; i++ {
		frame, ok := wave.Next(sampleRate)
		require.True(t, ok)
		assert.LessOrEqual(t, math.Abs(float64(frame)), 1.0/3)
	}
}

func TestSineAmplifyTake(t *testing.T) {
	source := hodaun.Take[hodaun.Mono](
		hodaun.Amplify[hodaun.Mono](gen.SineWave(hodaun.Constant(440)), hodaun.Constant(0.5)),
		time.Second,
	)
	frames := audiotest.Drain(source, sampleRate, sampleRate+10)
	// the elapsed-time accumulation may land one frame either side of a
	// second at a rate whose reciprocal is inexact
	require.InDelta(t, 44100, float64(len(frames)), 1)

	assert.InDelta(t, 0, float64(frames[0]), 1e-3)
	peak := 0.0
	crossings := 0
	for i, frame := range frames {
		if abs := math.Abs(float64(frame)); abs > peak {
			peak = abs
		}
		if i > 0 && (frames[i-1] < 0) != (frame < 0) && frame != 0 {
			crossings++
		}
	}
	assert.InDelta(t, 0.5, peak, 1e-3)
	assert.InDelta(t, 880, float64(crossings), 2)
}

func TestNoiseRange(t *testing.T) {
	noise := gen.NewNoise()
	for i := 0; i < 1000; i++ {
		frame, ok := noise.Next(sampleRate)
		require.True(t, ok)
		assert.GreaterOrEqual(t, float64(frame), -1.0)
		assert.Less(t, float64(frame), 1.0)
	}
}

func TestNoiseSeedDeterministic(t *testing.T) {
	a := gen.NewNoiseSeed(42)
	b := gen.NewNoiseSeed(42)
	for i := 0; i < 100; i++ {
		av, _ := a.Next(sampleRate)
		bv, _ := b.Next(sampleRate)
		assert.Equal(t, av, bv)
	}
}
