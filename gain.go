package hodaun

import (
	"math"
	"time"
)

// Amplify scales every frame of a source by an automated multiplier.
// The result ends when the source or the automation ends.
func Amplify[F Frame[F]](source Source[F], amp Automation) Source[F] {
	return &amplify[F]{source: source, amp: amp}
}

type amplify[F Frame[F]] struct {
	source Source[F]
	amp    Automation
	done   bool
}

func (a *amplify[F]) Next(sampleRate float64) (F, bool) {
	var zero F
	if a.done {
		return zero, false
	}
	frame, ok := a.source.Next(sampleRate)
	if !ok {
		a.done = true
		return zero, false
	}
	amp, ok := a.amp.Next(sampleRate)
	if !ok {
		a.done = true
		return zero, false
	}
	return frame.Map(func(v float64) float64 { return v * float64(amp) }), true
}

// Normalize applies a running-average gain control that pulls the
// source's average amplitude towards the target. window sets the
// smoothing of the exponential running average. This is a one-pole AGC
// with no look-ahead, so it may overshoot on transients.
func Normalize[F Frame[F]](source Source[F], target Automation, window time.Duration) Source[F] {
	return &normalize[F]{
		source: source,
		target: target,
		ampMul: 1,
		window: window.Seconds(),
	}
}

type normalize[F Frame[F]] struct {
	source Source[F]
	target Automation
	ampMul float64
	window float64
	done   bool
}

func (n *normalize[F]) Next(sampleRate float64) (F, bool) {
	var zero F
	if n.done {
		return zero, false
	}
	frame, ok := n.source.Next(sampleRate)
	if !ok {
		n.done = true
		return zero, false
	}
	target, ok := n.target.Next(sampleRate)
	if !ok {
		n.done = true
		return zero, false
	}
	t := 1 / (sampleRate * n.window)
	amp := float64(target) / n.ampMul
	amp = (1-t)*amp + t*math.Abs(frame.Avg())
	n.ampMul = float64(target) / amp
	return frame.Map(func(v float64) float64 { return v * n.ampMul }), true
}

// Pan spreads a source across the stereo field. The pan position runs
// from -1 (hard left) to 1 (hard right) and is remapped internally to a
// [0, 1] gain split. Non-mono sources are averaged before panning.
func Pan[F Frame[F]](source Source[F], pan Automation) Source[Stereo] {
	return &panSource[F]{source: source, pan: pan}
}

type panSource[F Frame[F]] struct {
	source Source[F]
	pan    Automation
	done   bool
}

func (p *panSource[F]) Next(sampleRate float64) (Stereo, bool) {
	if p.done {
		return Stereo{}, false
	}
	frame, ok := p.source.Next(sampleRate)
	if !ok {
		p.done = true
		return Stereo{}, false
	}
	pos, ok := p.pan.Next(sampleRate)
	if !ok {
		p.done = true
		return Stereo{}, false
	}
	a := frame.Avg()
	split := (float64(pos) + 1) / 2
	return Stereo{a * (1 - split), a * split}, true
}
