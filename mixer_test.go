package hodaun_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/kaikalii/hodaun"
	"github.com/kaikalii/hodaun/internal/audiotest"
)

func TestMixerSums(t *testing.T) {
	mixer := hodaun.NewMixer[hodaun.Mono]()
	mixer.Add(audiotest.NewSeq(1, 1))
	mixer.Add(audiotest.NewSeq(2, 2, 1))

	for _, expected := range []float64{3, 3, 1} {
		frame, ok := mixer.Next(sampleRate)
		require.True(t, ok)
		assert.InDelta(t, expected, float64(frame), 1e-9)
	}
}

func TestMixerEmptyProducesSilence(t *testing.T) {
	mixer := hodaun.NewMixer[hodaun.Stereo]()
	for i := 0; i < 5; i++ {
		frame, ok := mixer.Next(sampleRate)
		require.True(t, ok)
		assert.Equal(t, hodaun.Stereo{}, frame)
	}
}

func TestMixerPrunesFinishedSources(t *testing.T) {
	mixer := hodaun.NewMixer[hodaun.Mono]()
	// Seq panics if pulled after exhaustion, so this doubles as a check
	// that a finished source is dropped and never pulled again
	mixer.Add(audiotest.NewSeq(1))
	for i := 0; i < 10; i++ {
		frame, ok := mixer.Next(sampleRate)
		require.True(t, ok)
		if i == 0 {
			assert.Equal(t, hodaun.Mono(1), frame)
		} else {
			assert.Equal(t, hodaun.Mono(0), frame)
		}
	}
}

func TestMixerConcurrentAdd(t *testing.T) {
	defer goleak.VerifyNone(t)
	const (
		adders = 8
		frames = 100
	)
	mixer := hodaun.NewMixer[hodaun.Mono]()
	var wg sync.WaitGroup
	var added atomic.Int32
	for i := 0; i < adders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mixer.Add(audiotest.NewLevel(1, frames))
			added.Add(1)
		}()
	}

	// pull while adds race in, then long enough past the last add for
	// every source to play out in full
	total := 0.0
	pull := func() {
		frame, ok := mixer.Next(sampleRate)
		require.True(t, ok)
		total += float64(frame)
	}
	for added.Load() < adders {
		pull()
	}
	wg.Wait()
	for i := 0; i < frames+1; i++ {
		pull()
	}
	// every frame of every source is delivered exactly once
	assert.InDelta(t, adders*frames, total, 1e-9)
}
