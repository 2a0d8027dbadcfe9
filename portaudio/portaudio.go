// Package portaudio plays sources on and records from the platform's
// audio devices. It is a thin boundary: frames are pulled from a root
// source at the device's sample rate and converted to float32 buffers.
// Device and stream failures are the distinguished errors of this
// boundary; they are never produced by the core.
package portaudio

import (
	"github.com/gordonklaus/portaudio"
	"github.com/sirupsen/logrus"

	"github.com/kaikalii/hodaun"
	"github.com/kaikalii/hodaun/log"
)

const bufferSize = 512

// Output mixes sources and plays them on the default output device.
// Sources are added through the embedded mixer and dropped once they
// report exhaustion.
type Output[F hodaun.Frame[F]] struct {
	*hodaun.Mixer[F]
	stream     *portaudio.Stream
	sampleRate float64
	buf        []float32
	logger     *logrus.Logger
	started    bool
	done       chan struct{}
	stopped    chan struct{}
}

// NewOutput opens the default output device with F's channel count at
// the device's default sample rate.
func NewOutput[F hodaun.Frame[F]]() (*Output[F], error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	dev, err := portaudio.DefaultOutputDevice()
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	var zero F
	channels := zero.Channels()
	o := &Output[F]{
		Mixer:      hodaun.NewMixer[F](),
		sampleRate: dev.DefaultSampleRate,
		buf:        make([]float32, bufferSize*channels),
		logger:     log.GetLogger(),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}
	o.stream, err = portaudio.OpenDefaultStream(0, channels, o.sampleRate, bufferSize, &o.buf)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	return o, nil
}

// SampleRate returns the rate the device reported; sources added to the
// output are driven at this rate.
func (o *Output[F]) SampleRate() float64 { return o.sampleRate }

// Play starts the stream and the goroutine feeding it.
func (o *Output[F]) Play() error {
	if err := o.stream.Start(); err != nil {
		return err
	}
	o.started = true
	go o.feed()
	return nil
}

func (o *Output[F]) feed() {
	defer close(o.stopped)
	var zero F
	channels := zero.Channels()
	frame := make([]float64, channels)
	for {
		select {
		case <-o.done:
			return
		default:
		}
		for i := 0; i < len(o.buf); i += channels {
			f, _ := o.Mixer.Next(o.sampleRate)
			hodaun.WriteSlice(f, frame)
			for c := 0; c < channels; c++ {
				o.buf[i+c] = float32(frame[c])
			}
		}
		if err := o.stream.Write(); err != nil {
			// underflow is recoverable; keep feeding
			o.logger.Debugf("portaudio: write: %v", err)
		}
	}
}

// Close stops playback and releases the device.
func (o *Output[F]) Close() error {
	if o.started {
		close(o.done)
		<-o.stopped
		o.started = false
		if err := o.stream.Stop(); err != nil {
			return err
		}
	}
	if err := o.stream.Close(); err != nil {
		return err
	}
	return portaudio.Terminate()
}

// Input records from the default input device as an UnrolledSource.
type Input struct {
	stream     *portaudio.Stream
	channels   int
	sampleRate float64
	buf        []float32
	length     int
	pos        int
	started    bool
	finished   bool
}

// NewInput opens the default input device with the given channel count
// at the device's default sample rate.
func NewInput(channels int) (*Input, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	dev, err := portaudio.DefaultInputDevice()
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	in := &Input{
		channels:   channels,
		sampleRate: dev.DefaultSampleRate,
		buf:        make([]float32, bufferSize*channels),
	}
	in.stream, err = portaudio.OpenDefaultStream(channels, 0, in.sampleRate, bufferSize, &in.buf)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	return in, nil
}

// Channels implements hodaun.UnrolledSource.
func (in *Input) Channels() int { return in.channels }

// SampleRate implements hodaun.UnrolledSource.
func (in *Input) SampleRate() float64 { return in.sampleRate }

// Next implements hodaun.UnrolledSource. Stream errors end the stream.
func (in *Input) Next() (float64, bool) {
	if in.finished {
		return 0, false
	}
	if !in.started {
		if err := in.stream.Start(); err != nil {
			in.finished = true
			return 0, false
		}
		in.started = true
	}
	if in.pos >= in.length {
		if err := in.stream.Read(); err != nil {
			in.finished = true
			return 0, false
		}
		in.length = len(in.buf)
		in.pos = 0
	}
	amp := float64(in.buf[in.pos])
	in.pos++
	return amp, true
}

// Close stops recording and releases the device.
func (in *Input) Close() error {
	in.finished = true
	if in.started {
		if err := in.stream.Stop(); err != nil {
			return err
		}
		in.started = false
	}
	if err := in.stream.Close(); err != nil {
		return err
	}
	return portaudio.Terminate()
}
