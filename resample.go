package hodaun

// UnrolledSource is a flat amplitude stream whose channel count is only
// known at runtime, such as a decoded file or device input. Samples are
// interleaved: one amplitude per channel per frame. Resample lifts an
// UnrolledSource into a fixed-channel Source.
type UnrolledSource interface {
	// Next returns the next amplitude. The second return is false once
	// the stream is exhausted.
	Next() (float64, bool)
	// Channels returns the number of interleaved channels.
	Channels() int
	// SampleRate returns the stream's native sample rate.
	SampleRate() float64
}

// Resample converts an unrolled stream into a fixed-channel source,
// adapting both channel count and sample rate. For mono output the
// input channels are averaged; mono input is broadcast to every output
// channel; otherwise channels are copied by position and extra input
// channels are discarded. Partial frames are never emitted: if the
// input runs out mid-frame the source ends there. Rate adaptation
// repeats or skips input frames to match the ratio of the input rate to
// the pull rate.
func Resample[F Frame[F]](source UnrolledSource) Source[F] {
	return &resample[F]{source: source}
}

type resample[F Frame[F]] struct {
	source  UnrolledSource
	outTime float64
	inTime  float64
	frame   F
	have    bool
	done    bool
}

func (r *resample[F]) Next(sampleRate float64) (F, bool) {
	var zero F
	if r.done {
		return zero, false
	}
	r.outTime += 1 / sampleRate
	for r.inTime < r.outTime {
		frame, ok := r.readFrame()
		r.frame, r.have = frame, ok
		r.inTime += 1 / r.source.SampleRate()
	}
	if !r.have {
		r.done = true
		return zero, false
	}
	return r.frame, true
}

// readFrame pulls one full input frame and adapts it to F's channel
// count.
func (r *resample[F]) readFrame() (F, bool) {
	var zero F
	in := r.source.Channels()
	out := zero.Channels()
	frame := zero.Uniform(0)
	switch {
	case out == 0:
		for i := 0; i < in; i++ {
			if _, ok := r.source.Next(); !ok {
				return zero, false
			}
		}
	case out == 1:
		sum := 0.0
		for i := 0; i < in; i++ {
			amp, ok := r.source.Next()
			if !ok {
				return zero, false
			}
			sum += amp
		}
		frame = frame.SetChannel(0, sum/float64(in))
	case in == 1:
		amp, ok := r.source.Next()
		if !ok {
			return zero, false
		}
		frame = frame.Uniform(amp)
	default:
		for i := 0; i < in; i++ {
			amp, ok := r.source.Next()
			if !ok {
				return zero, false
			}
			if i < out {
				frame = frame.SetChannel(i, amp)
			}
		}
	}
	return frame, true
}
