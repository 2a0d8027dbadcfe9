package hodaun_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaikalii/hodaun"
	"github.com/kaikalii/hodaun/internal/audiotest"
)

func TestAmplify(t *testing.T) {
	amped := hodaun.Amplify[hodaun.Mono](
		audiotest.NewSeq(0.2, 0.4, -0.6),
		hodaun.Constant(0.5),
	)
	frames := audiotest.Drain(amped, sampleRate, 10)
	assert.InDeltaSlice(t, []float64{0.1, 0.2, -0.3}, monoValues(frames), 1e-9)
}

func TestAmplifyLive(t *testing.T) {
	cell := hodaun.NewShared(1.0)
	amped := hodaun.Amplify[hodaun.Mono](audiotest.NewLevel(0.5, 4), hodaun.Automate(cell))

	frame, ok := amped.Next(sampleRate)
	require.True(t, ok)
	assert.Equal(t, hodaun.Mono(0.5), frame)

	cell.Set(0.2)
	frame, ok = amped.Next(sampleRate)
	require.True(t, ok)
	assert.InDelta(t, 0.1, float64(frame), 1e-9)
}

func TestNormalizeConverges(t *testing.T) {
	const (
		rate   = 1000.0
		target = 0.5
	)
	norm := hodaun.Normalize[hodaun.Mono](
		audiotest.NewLevel(0.25, 2000),
		hodaun.Constant(target),
		10*time.Millisecond,
	)
	frames := audiotest.Drain(norm, rate, 3000)
	require.Len(t, frames, 2000)
	// the running average settles and the gain brings 0.25 up to target
	assert.InDelta(t, target, float64(frames[len(frames)-1]), 1e-3)
}

func TestPan(t *testing.T) {
	tests := []struct {
		name     string
		pan      float64
		expected hodaun.Stereo
	}{
		{name: "center", pan: 0, expected: hodaun.Stereo{0.4, 0.4}},
		{name: "hard left", pan: -1, expected: hodaun.Stereo{0.8, 0}},
		{name: "hard right", pan: 1, expected: hodaun.Stereo{0, 0.8}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			panned := hodaun.Pan[hodaun.Mono](
				audiotest.NewLevel(0.8, 1),
				hodaun.Constant(test.pan),
			)
			frame, ok := panned.Next(sampleRate)
			require.True(t, ok)
			assert.InDelta(t, test.expected[0], frame[0], 1e-9)
			assert.InDelta(t, test.expected[1], frame[1], 1e-9)
		})
	}
}

func TestPanAveragesWideSources(t *testing.T) {
	stereoIn := hodaun.Map(audiotest.NewSeq(0), func(hodaun.Mono) hodaun.Stereo {
		return hodaun.Stereo{0.2, 0.6}
	})
	panned := hodaun.Pan[hodaun.Stereo](stereoIn, hodaun.Constant(0))
	frame, ok := panned.Next(sampleRate)
	require.True(t, ok)
	assert.InDelta(t, 0.2, frame[0], 1e-9)
	assert.InDelta(t, 0.2, frame[1], 1e-9)
}
