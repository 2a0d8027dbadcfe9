package hodaun_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaikalii/hodaun"
	"github.com/kaikalii/hodaun/internal/audiotest"
)

func TestAutomateReadsLiveValue(t *testing.T) {
	cell := hodaun.NewShared(0.1)
	auto := hodaun.Automate(cell)

	v, ok := auto.Next(sampleRate)
	require.True(t, ok)
	assert.Equal(t, hodaun.Mono(0.1), v)

	cell.Set(0.9)
	v, ok = auto.Next(sampleRate)
	require.True(t, ok)
	assert.Equal(t, hodaun.Mono(0.9), v)
}

func TestSourceAsAutomation(t *testing.T) {
	// any mono source drives a parameter; here it scales an upstream
	amped := hodaun.Amplify[hodaun.Mono](
		audiotest.NewLevel(1, 4),
		audiotest.NewSeq(0, 0.5, 1),
	)
	frames := audiotest.Drain(amped, sampleRate, 10)
	// the combinator ends with its automation
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, monoValues(frames), 1e-9)
}
