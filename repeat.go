package hodaun

import "time"

// Repeat plays up to n instances of the source produced by newSource.
// Without a period, the next instance starts the moment the previous one
// ends. With a period (see Every), a new instance starts every period
// regardless of whether earlier ones have finished, and concurrent
// instances are summed. The result ends once the instance cap has been
// reached and every instance has finished.
func Repeat[F Frame[F]](n int, newSource func() Source[F]) *RepeatSource[F] {
	return &RepeatSource[F]{newSource: newSource, limit: n}
}

// RepeatIndefinitely is Repeat without an instance cap; the result never
// ends.
func RepeatIndefinitely[F Frame[F]](newSource func() Source[F]) *RepeatSource[F] {
	return &RepeatSource[F]{newSource: newSource}
}

// RepeatSource is the source returned by Repeat.
type RepeatSource[F Frame[F]] struct {
	newSource func() Source[F]
	limit     int     // 0 means unlimited
	period    float64 // 0 means start when the previous instance ends
	spawned   int
	elapsed   float64
	active    []Source[F]
	done      bool
}

// Every sets the period between instance starts.
func (r *RepeatSource[F]) Every(period time.Duration) *RepeatSource[F] {
	r.period = period.Seconds()
	return r
}

func (r *RepeatSource[F]) canSpawn() bool {
	return r.limit == 0 || r.spawned < r.limit
}

// Next implements Source.
func (r *RepeatSource[F]) Next(sampleRate float64) (F, bool) {
	var zero F
	if r.done {
		return zero, false
	}
	if r.period > 0 {
		for r.canSpawn() && r.elapsed >= float64(r.spawned)*r.period {
			r.active = append(r.active, r.newSource())
			r.spawned++
		}
	}
	sum := zero.Uniform(0)
	produced := false
	live := r.active[:0]
	for _, s := range r.active {
		frame, ok := s.Next(sampleRate)
		if !ok {
			continue
		}
		sum = Add(sum, frame)
		produced = true
		live = append(live, s)
	}
	r.active = live
	if !produced && r.period == 0 && r.canSpawn() {
		// the previous instance ended on this pull; start the next one
		// without a gap
		s := r.newSource()
		r.spawned++
		if frame, ok := s.Next(sampleRate); ok {
			sum = Add(sum, frame)
			produced = true
			r.active = append(r.active, s)
		}
	}
	if !produced && !r.canSpawn() && len(r.active) == 0 {
		r.done = true
		return zero, false
	}
	r.elapsed += 1 / sampleRate
	return sum, true
}
