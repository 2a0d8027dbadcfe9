package hodaun

import "sync"

// Shared is a mutex-guarded cell for values mutated outside the
// audio-producing goroutine. Handles are pointers, so every copy aliases
// the same cell. All access serializes; there is no reader-writer
// distinction.
type Shared[T any] struct {
	mu  sync.Mutex
	val T
}

// NewShared returns a cell holding val.
func NewShared[T any](val T) *Shared[T] {
	return &Shared[T]{val: val}
}

// Get copies the value out.
func (s *Shared[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.val
}

// Set replaces the value.
func (s *Shared[T]) Set(val T) {
	s.mu.Lock()
	s.val = val
	s.mu.Unlock()
}

// With runs f on the value while holding the lock.
func (s *Shared[T]) With(f func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(&s.val)
}
