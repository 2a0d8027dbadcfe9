package example

import (
	"time"

	"github.com/kaikalii/hodaun"
	"github.com/kaikalii/hodaun/gen"
	"github.com/kaikalii/hodaun/portaudio"
)

// Example:
//		Hold a note with a maintainer
//		Release it with a fade from another goroutine
func four() {
	out, err := portaudio.NewOutput[hodaun.Mono]()
	check(err)
	defer out.Close()

	m := hodaun.NewMaintainerRelease(time.Second)
	env := hodaun.NewShared(hodaun.NewAdsEnvelope(
		50*time.Millisecond,
		200*time.Millisecond,
		0.6,
	))
	note := hodaun.Ads[hodaun.Mono](
		hodaun.Amplify[hodaun.Mono](
			gen.TriangleWave(hodaun.Constant(hodaun.A.Oct(4).Frequency())),
			hodaun.Constant(0.5),
		),
		env,
	)
	out.Add(hodaun.Maintained[hodaun.Mono](note, m))
	check(out.Play())

	time.Sleep(2 * time.Second)
	m.Stop()
	time.Sleep(time.Second)
}
