package hodaun

import (
	"sync/atomic"
	"time"
)

// AdsEnvelope is an attack-decay-sustain envelope: a linear ramp from 0
// to 1 over Attack, a linear ramp from 1 to Sustain over Decay, then a
// constant Sustain plateau. There is no release stage; combine with
// TakeRelease or Maintained to end the sound.
type AdsEnvelope struct {
	Attack  time.Duration
	Decay   time.Duration
	Sustain float64
}

// NewAdsEnvelope returns an envelope with the given stages.
func NewAdsEnvelope(attack, decay time.Duration, sustain float64) AdsEnvelope {
	return AdsEnvelope{Attack: attack, Decay: decay, Sustain: sustain}
}

// Ads multiplies a source by an attack-decay-sustain envelope. The
// envelope lives in a shared cell so it can be retuned while playing.
// The result ends only when the source ends.
func Ads[F Frame[F]](source Source[F], envelope *Shared[AdsEnvelope]) Source[F] {
	return &ads[F]{source: source, envelope: envelope}
}

type ads[F Frame[F]] struct {
	source   Source[F]
	envelope *Shared[AdsEnvelope]
	elapsed  float64
	done     bool
}

func (a *ads[F]) Next(sampleRate float64) (F, bool) {
	var zero F
	if a.done {
		return zero, false
	}
	frame, ok := a.source.Next(sampleRate)
	if !ok {
		a.done = true
		return zero, false
	}
	env := a.envelope.Get()
	attack := env.Attack.Seconds()
	decay := env.Decay.Seconds()
	var amp float64
	switch {
	case a.elapsed < attack:
		amp = a.elapsed / attack
	case a.elapsed-attack < decay:
		amp = (1-(a.elapsed-attack)/decay)*(1-env.Sustain) + env.Sustain
	default:
		amp = env.Sustain
	}
	a.elapsed += 1 / sampleRate
	return frame.Map(func(v float64) float64 { return v * amp }), true
}

// Maintainer keeps Maintained sources playing. Stopping it triggers a
// one-shot release fade on every source maintained by it, after which
// those sources end. This stands in for dropping an owning handle: the
// maintained side only observes liveness, it never owns the maintainer.
type Maintainer struct {
	alive   atomic.Bool
	release *Shared[time.Duration]
}

// NewMaintainer returns a live maintainer with no release fade: stopping
// it cuts maintained sources off on their next frame.
func NewMaintainer() *Maintainer {
	return NewMaintainerRelease(0)
}

// NewMaintainerRelease returns a live maintainer whose maintained
// sources fade out linearly over release once it is stopped.
func NewMaintainerRelease(release time.Duration) *Maintainer {
	m := &Maintainer{release: NewShared(release)}
	m.alive.Store(true)
	return m
}

// SetRelease changes the release duration. It applies to sources whose
// fade has not started yet.
func (m *Maintainer) SetRelease(release time.Duration) {
	m.release.Set(release)
}

// Stop ends the maintainer's liveness. Safe to call from any goroutine
// and more than once.
func (m *Maintainer) Stop() {
	m.alive.Store(false)
}

// Maintained gates a source on a maintainer's liveness: while the
// maintainer lives the source plays unmodified; once it is stopped the
// source fades out linearly over the maintainer's release duration and
// then ends.
func Maintained[F Frame[F]](source Source[F], m *Maintainer) Source[F] {
	return &maintained[F]{source: source, maintainer: m}
}

type maintained[F Frame[F]] struct {
	source         Source[F]
	maintainer     *Maintainer
	releaseElapsed float64
	done           bool
}

func (s *maintained[F]) Next(sampleRate float64) (F, bool) {
	var zero F
	if s.done {
		return zero, false
	}
	if s.maintainer.alive.Load() {
		frame, ok := s.source.Next(sampleRate)
		if !ok {
			s.done = true
		}
		return frame, ok
	}
	release := s.maintainer.release.Get().Seconds()
	if s.releaseElapsed >= release {
		s.done = true
		return zero, false
	}
	frame, ok := s.source.Next(sampleRate)
	if !ok {
		s.done = true
		return zero, false
	}
	amp := 1 - s.releaseElapsed/release
	s.releaseElapsed += 1 / sampleRate
	return frame.Map(func(v float64) float64 { return v * amp }), true
}
