package hodaun_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaikalii/hodaun"
	"github.com/kaikalii/hodaun/internal/audiotest"
)

const sampleRate = 1000.0

func TestSilence(t *testing.T) {
	var s hodaun.Silence[hodaun.Stereo]
	for i := 0; i < 10; i++ {
		frame, ok := s.Next(sampleRate)
		require.True(t, ok)
		assert.Equal(t, hodaun.Stereo{}, frame)
	}
}

func TestConstant(t *testing.T) {
	c := hodaun.Constant(0.5)
	for i := 0; i < 10; i++ {
		frame, ok := c.Next(sampleRate)
		require.True(t, ok)
		assert.Equal(t, hodaun.Mono(0.5), frame)
	}
}

func TestMap(t *testing.T) {
	double := hodaun.Map(audiotest.NewSeq(0.1, 0.2, 0.3), func(m hodaun.Mono) hodaun.Mono {
		return m * 2
	})
	frames := audiotest.Drain(double, sampleRate, 10)
	assert.InDeltaSlice(t, []float64{0.2, 0.4, 0.6}, monoValues(frames), 1e-9)

	// terminal signal is one-shot: further pulls stay exhausted and do
	// not touch the upstream (Seq would panic)
	_, ok := double.Next(sampleRate)
	assert.False(t, ok)
}

func TestMapChangesFrameType(t *testing.T) {
	wide := hodaun.Map(audiotest.NewSeq(0.5), hodaun.StereoOf)
	frame, ok := wide.Next(sampleRate)
	require.True(t, ok)
	assert.Equal(t, hodaun.Stereo{0.5, 0.5}, frame)
}

func TestZip(t *testing.T) {
	zipped := hodaun.Zip(
		audiotest.NewSeq(0.1, 0.2, 0.3),
		audiotest.NewSeq(1, 1),
		func(a, b hodaun.Mono) hodaun.Stereo { return hodaun.Stereo{float64(a), float64(b)} },
	)
	frames := audiotest.Drain(zipped, sampleRate, 10)
	// ends as soon as the shorter side does
	require.Len(t, frames, 2)
	assert.Equal(t, hodaun.Stereo{0.1, 1}, frames[0])
	assert.Equal(t, hodaun.Stereo{0.2, 1}, frames[1])
}

func TestPositive(t *testing.T) {
	pos := hodaun.Positive[hodaun.Mono](audiotest.NewSeq(-1, 0, 1))
	frames := audiotest.Drain(pos, sampleRate, 10)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, monoValues(frames), 1e-9)
}

func TestInvert(t *testing.T) {
	inv := hodaun.Invert[hodaun.Mono](audiotest.NewSeq(-0.5, 0.25))
	frames := audiotest.Drain(inv, sampleRate, 10)
	assert.InDeltaSlice(t, []float64{0.5, -0.25}, monoValues(frames), 1e-9)
}

func monoValues(frames []hodaun.Mono) []float64 {
	values := make([]float64, len(frames))
	for i, f := range frames {
		values[i] = float64(f)
	}
	return values
}
