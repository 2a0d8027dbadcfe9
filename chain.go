package hodaun

import "time"

// Chain plays sources back to back: when one ends, the next begins on
// the very next frame. Entries added with ThenAt instead start at a
// fixed time measured from the start of the chain, which allows entries
// to overlap; whenever several entries are active at once their frames
// are summed.
func Chain[F Frame[F]](sources ...Source[F]) *ChainSource[F] {
	return &ChainSource[F]{queue: sources}
}

// ChainSource is the source returned by Chain.
type ChainSource[F Frame[F]] struct {
	queue   []Source[F]
	timed   []timedEntry[F]
	elapsed float64
	done    bool
}

type timedEntry[F Frame[F]] struct {
	source  Source[F]
	startAt float64
	done    bool
}

// Then appends a source that starts when all sequential entries before
// it have ended.
func (c *ChainSource[F]) Then(source Source[F]) *ChainSource[F] {
	c.queue = append(c.queue, source)
	return c
}

// ThenAt appends a source that starts the given time after the start of
// the chain, regardless of what else is playing.
func (c *ChainSource[F]) ThenAt(source Source[F], start time.Duration) *ChainSource[F] {
	c.timed = append(c.timed, timedEntry[F]{source: source, startAt: start.Seconds()})
	return c
}

// Next implements Source.
func (c *ChainSource[F]) Next(sampleRate float64) (F, bool) {
	var zero F
	if c.done {
		return zero, false
	}
	sum := zero.Uniform(0)
	produced := false
	for len(c.queue) > 0 {
		frame, ok := c.queue[0].Next(sampleRate)
		if ok {
			sum = Add(sum, frame)
			produced = true
			break
		}
		// fall through to the next segment within the same pull
		c.queue = c.queue[1:]
	}
	pending := false
	for i := range c.timed {
		e := &c.timed[i]
		if e.done {
			continue
		}
		if c.elapsed < e.startAt {
			pending = true
			continue
		}
		frame, ok := e.source.Next(sampleRate)
		if !ok {
			e.done = true
			continue
		}
		sum = Add(sum, frame)
		produced = true
	}
	if !produced && len(c.queue) == 0 && !pending {
		c.done = true
		return zero, false
	}
	c.elapsed += 1 / sampleRate
	return sum, true
}
