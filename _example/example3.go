package example

import (
	"os"
	"time"

	"github.com/kaikalii/hodaun"
	"github.com/kaikalii/hodaun/gen"
	"github.com/kaikalii/hodaun/signal"
	"github.com/kaikalii/hodaun/wav"
)

// Example:
//		Synthesize a filtered saw melody
//		Write it to a .wav file
func three() {
	const sampleRate = 44100

	melody := hodaun.Chain[hodaun.Mono]()
	for i, pitch := range []hodaun.Pitch{
		hodaun.A.Oct(3),
		hodaun.C.Oct(4),
		hodaun.E.Oct(4),
		hodaun.A.Oct(4),
	} {
		note := hodaun.LowPass[hodaun.Mono](
			gen.SawWave(hodaun.Constant(pitch.Frequency())),
			hodaun.Constant(2000),
		)
		melody.ThenAt(
			hodaun.TakeRelease[hodaun.Mono](note, 500*time.Millisecond, 100*time.Millisecond),
			time.Duration(i)*400*time.Millisecond,
		)
	}

	f, err := os.Create("melody.wav")
	check(err)
	defer f.Close()
	check(wav.WriteSource[hodaun.Mono](f, melody, sampleRate, signal.BitDepth16))
}
