package example

import (
	"time"

	"github.com/kaikalii/hodaun"
	"github.com/kaikalii/hodaun/gen"
	"github.com/kaikalii/hodaun/portaudio"
)

// Example:
//		Play a major chord on the default output device
func one() {
	out, err := portaudio.NewOutput[hodaun.Stereo]()
	check(err)
	defer out.Close()

	for _, pitch := range []hodaun.Pitch{
		hodaun.C.Oct(4),
		hodaun.E.Oct(4),
		hodaun.G.Oct(4),
	} {
		wave := gen.SineWave(hodaun.Constant(pitch.Frequency()))
		voice := hodaun.Pan[hodaun.Mono](
			hodaun.Amplify[hodaun.Mono](wave, hodaun.Constant(0.3)),
			hodaun.Constant(0),
		)
		out.Add(hodaun.TakeRelease[hodaun.Stereo](voice, 2*time.Second, 500*time.Millisecond))
	}

	check(out.Play())
	time.Sleep(2 * time.Second)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
