package hodaun

// Source is a pull-based stream of frames. Implementations are stateful
// and single-consumer: ownership moves into whichever combinator wraps
// them. Use SharedSource or a Mixer when a stream must be observed from
// more than one place.
type Source[F Frame[F]] interface {
	// Next produces the next frame at the given sample rate. The second
	// return is false once the source is exhausted; after observing it
	// the caller must not call Next again.
	Next(sampleRate float64) (F, bool)
}

// Silence is an infinite all-zero source.
type Silence[F Frame[F]] struct{}

// Next implements Source.
func (Silence[F]) Next(float64) (F, bool) {
	var f F
	return f.Uniform(0), true
}

// Constant is an infinite mono source with a fixed amplitude. It doubles
// as a constant Automation.
type Constant float64

// Next implements Source.
func (c Constant) Next(float64) (Mono, bool) { return Mono(c), true }

// Map transforms every frame of a source, possibly changing the frame
// type. The result ends when the source ends.
func Map[A Frame[A], B Frame[B]](source Source[A], f func(A) B) Source[B] {
	return &mapSource[A, B]{source: source, f: f}
}

type mapSource[A Frame[A], B Frame[B]] struct {
	source Source[A]
	f      func(A) B
	done   bool
}

func (m *mapSource[A, B]) Next(sampleRate float64) (B, bool) {
	var zero B
	if m.done {
		return zero, false
	}
	frame, ok := m.source.Next(sampleRate)
	if !ok {
		m.done = true
		return zero, false
	}
	return m.f(frame), true
}

// Zip combines two sources frame by frame. The result ends as soon as
// either input ends; the other input is not drained.
func Zip[A Frame[A], B Frame[B], C Frame[C]](a Source[A], b Source[B], f func(A, B) C) Source[C] {
	return &zipSource[A, B, C]{a: a, b: b, f: f}
}

type zipSource[A Frame[A], B Frame[B], C Frame[C]] struct {
	a    Source[A]
	b    Source[B]
	f    func(A, B) C
	done bool
}

func (z *zipSource[A, B, C]) Next(sampleRate float64) (C, bool) {
	var zero C
	if z.done {
		return zero, false
	}
	fa, ok := z.a.Next(sampleRate)
	if !ok {
		z.done = true
		return zero, false
	}
	fb, ok := z.b.Next(sampleRate)
	if !ok {
		z.done = true
		return zero, false
	}
	return z.f(fa, fb), true
}

// Positive remaps amplitudes from [-1, 1] to [0, 1]. It adapts an
// oscillator for use as a non-negative automation, such as a low-pass
// cutoff.
func Positive[F Frame[F]](source Source[F]) Source[F] {
	return &mapSource[F, F]{source: source, f: func(f F) F {
		return f.Map(func(a float64) float64 { return (a + 1) / 2 })
	}}
}

// Invert flips the polarity of every amplitude.
func Invert[F Frame[F]](source Source[F]) Source[F] {
	return &mapSource[F, F]{source: source, f: func(f F) F {
		return f.Map(func(a float64) float64 { return -a })
	}}
}
