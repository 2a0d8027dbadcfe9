package hodaun

// LowPass applies a one-pole low-pass filter with an automated cutoff
// frequency. The first frame seeds the filter and passes through
// unmodified; there is no warm-up ramp.
func LowPass[F Frame[F]](source Source[F], cutoff Automation) Source[F] {
	return &lowPass[F]{source: source, cutoff: cutoff}
}

type lowPass[F Frame[F]] struct {
	source Source[F]
	cutoff Automation
	acc    F
	primed bool
	done   bool
}

func (l *lowPass[F]) Next(sampleRate float64) (F, bool) {
	var zero F
	if l.done {
		return zero, false
	}
	frame, ok := l.source.Next(sampleRate)
	if !ok {
		l.done = true
		return zero, false
	}
	freq, ok := l.cutoff.Next(sampleRate)
	if !ok {
		l.done = true
		return zero, false
	}
	if !l.primed {
		l.acc = frame
		l.primed = true
		return frame, true
	}
	t := float64(freq) / sampleRate
	if t > 1 {
		t = 1
	}
	l.acc = l.acc.Merge(frame, func(a, b float64) float64 { return Lerp(a, b, t) })
	return l.acc, true
}
