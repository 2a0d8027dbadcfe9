// Package audiotest provides deterministic sources for tests.
package audiotest

import (
	"fmt"

	"github.com/kaikalii/hodaun"
)

// Seq is a mono source producing a fixed series of amplitudes. It
// enforces the one-shot termination contract: pulling it again after it
// has reported exhaustion panics.
type Seq struct {
	values []float64
	pos    int
	done   bool
}

// NewSeq returns a source yielding the given amplitudes in order.
func NewSeq(values ...float64) *Seq {
	return &Seq{values: values}
}

// NewLevel returns a source yielding value n times.
func NewLevel(value float64, n int) *Seq {
	values := make([]float64, n)
	for i := range values {
		values[i] = value
	}
	return NewSeq(values...)
}

// Next implements hodaun.Source.
func (s *Seq) Next(float64) (hodaun.Mono, bool) {
	if s.done {
		panic("audiotest: source pulled after exhaustion")
	}
	if s.pos >= len(s.values) {
		s.done = true
		return 0, false
	}
	v := s.values[s.pos]
	s.pos++
	return hodaun.Mono(v), true
}

// Unrolled is a fixed interleaved amplitude stream.
type Unrolled struct {
	samples    []float64
	channels   int
	sampleRate float64
	pos        int
}

// NewUnrolled returns an unrolled stream over the given interleaved
// samples.
func NewUnrolled(channels int, sampleRate float64, samples ...float64) *Unrolled {
	return &Unrolled{samples: samples, channels: channels, sampleRate: sampleRate}
}

// Next implements hodaun.UnrolledSource.
func (u *Unrolled) Next() (float64, bool) {
	if u.pos >= len(u.samples) {
		return 0, false
	}
	v := u.samples[u.pos]
	u.pos++
	return v, true
}

// Channels implements hodaun.UnrolledSource.
func (u *Unrolled) Channels() int { return u.channels }

// SampleRate implements hodaun.UnrolledSource.
func (u *Unrolled) SampleRate() float64 { return u.sampleRate }

// Drain pulls a source until exhaustion and returns the frames. It
// panics if the source produces more than max frames.
func Drain[F hodaun.Frame[F]](source hodaun.Source[F], sampleRate float64, max int) []F {
	var frames []F
	for {
		frame, ok := source.Next(sampleRate)
		if !ok {
			return frames
		}
		frames = append(frames, frame)
		if len(frames) > max {
			panic(fmt.Sprintf("audiotest: source still alive after %d frames", max))
		}
	}
}
