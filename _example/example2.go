package example

import (
	"os"
	"time"

	"github.com/kaikalii/hodaun"
	"github.com/kaikalii/hodaun/portaudio"
	"github.com/kaikalii/hodaun/wav"
)

// Example:
//		Read .wav file
//		Play it on the default output device
func two() {
	f, err := os.Open("example.wav")
	check(err)
	defer f.Close()

	dec, err := wav.NewDecoder(f)
	check(err)

	out, err := portaudio.NewOutput[hodaun.Stereo]()
	check(err)
	defer out.Close()

	out.Add(hodaun.Resample[hodaun.Stereo](dec))
	check(out.Play())
	time.Sleep(5 * time.Second)
}
