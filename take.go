package hodaun

import "time"

// Take ends a source after the given duration.
func Take[F Frame[F]](source Source[F], dur time.Duration) Source[F] {
	return TakeRelease(source, dur, 0)
}

// TakeRelease ends a source after dur and linearly fades the final
// release seconds to zero, reaching silence at the cutoff.
func TakeRelease[F Frame[F]](source Source[F], dur, release time.Duration) Source[F] {
	return &take[F]{
		source:   source,
		duration: dur.Seconds(),
		release:  release.Seconds(),
	}
}

type take[F Frame[F]] struct {
	source   Source[F]
	duration float64
	elapsed  float64
	release  float64
	done     bool
}

func (t *take[F]) Next(sampleRate float64) (F, bool) {
	var zero F
	if t.done {
		return zero, false
	}
	if t.elapsed >= t.duration {
		t.done = true
		return zero, false
	}
	frame, ok := t.source.Next(sampleRate)
	if !ok {
		t.done = true
		return zero, false
	}
	amp := 1.0
	if t.release > 0 {
		if left := (t.duration - t.elapsed) / t.release; left < amp {
			amp = left
		}
	}
	t.elapsed += 1 / sampleRate
	if amp == 1 {
		return frame, true
	}
	return frame.Map(func(v float64) float64 { return v * amp }), true
}
