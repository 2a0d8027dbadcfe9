package hodaun

import "sync"

// Inspect taps a source, exposing its most recent frame through the
// returned inspector. The inspector may be read from any goroutine.
func Inspect[F Frame[F]](source Source[F]) (*Inspector[F], Source[F]) {
	curr := NewShared(inspected[F]{})
	return &Inspector[F]{curr: curr}, &inspectedSource[F]{source: source, curr: curr}
}

// Inspector reads the current frame of an inspected source.
type Inspector[F Frame[F]] struct {
	curr *Shared[inspected[F]]
}

// Read returns the frame most recently produced by the inspected source.
// The second return is false before the first pull and after the source
// has ended.
func (i *Inspector[F]) Read() (F, bool) {
	curr := i.curr.Get()
	return curr.frame, curr.ok
}

type inspected[F Frame[F]] struct {
	frame F
	ok    bool
}

type inspectedSource[F Frame[F]] struct {
	source Source[F]
	curr   *Shared[inspected[F]]
	done   bool
}

func (s *inspectedSource[F]) Next(sampleRate float64) (F, bool) {
	var zero F
	if s.done {
		return zero, false
	}
	frame, ok := s.source.Next(sampleRate)
	if !ok {
		s.done = true
		frame = zero
	}
	s.curr.Set(inspected[F]{frame: frame, ok: ok})
	return frame, ok
}

// SharedSource wraps a non-cloneable source behind a lock so that
// handles can be copied and pulled from different owners. All handles
// draw from the same underlying stream: each frame is delivered to
// exactly one caller, and once the stream ends every handle reports
// exhaustion.
type SharedSource[F Frame[F]] struct {
	state *sharedSourceState[F]
}

type sharedSourceState[F Frame[F]] struct {
	mu     sync.Mutex
	source Source[F]
	done   bool
}

// NewSharedSource wraps source. The caller must not use source directly
// afterwards.
func NewSharedSource[F Frame[F]](source Source[F]) SharedSource[F] {
	return SharedSource[F]{state: &sharedSourceState[F]{source: source}}
}

// Next implements Source.
func (s SharedSource[F]) Next(sampleRate float64) (F, bool) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	var zero F
	if s.state.done {
		return zero, false
	}
	frame, ok := s.state.source.Next(sampleRate)
	if !ok {
		s.state.done = true
		return zero, false
	}
	return frame, true
}
