package hodaun

import (
	"sync"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/kaikalii/hodaun/log"
)

// Mixer sums a dynamic set of sources into one. Add may be called from
// any goroutine while another drives Next; a pending source starts
// contributing on the next pull that observes it. Sources are pruned
// exactly when they report exhaustion. A Mixer itself never ends: an
// empty mixer produces silence.
type Mixer[F Frame[F]] struct {
	mu      sync.Mutex
	pending []mixerEntry[F]
	live    []mixerEntry[F]
	logger  *logrus.Logger
}

type mixerEntry[F Frame[F]] struct {
	id     string
	source Source[F]
}

// NewMixer returns an empty mixer.
func NewMixer[F Frame[F]]() *Mixer[F] {
	return &Mixer[F]{logger: log.GetLogger()}
}

// Add registers a source with the mixer. It holds the mixer lock only
// long enough to enqueue, so it never stalls the audio goroutine for
// more than a bounded critical section.
func (m *Mixer[F]) Add(source Source[F]) {
	entry := mixerEntry[F]{id: xid.New().String(), source: source}
	m.mu.Lock()
	m.pending = append(m.pending, entry)
	m.mu.Unlock()
	m.logger.Debugf("mixer: added source %s", entry.id)
}

// Next implements Source. It always produces a frame.
func (m *Mixer[F]) Next(sampleRate float64) (F, bool) {
	m.mu.Lock()
	if len(m.pending) > 0 {
		m.live = append(m.live, m.pending...)
		m.pending = m.pending[:0]
	}
	m.mu.Unlock()
	var zero F
	sum := zero.Uniform(0)
	live := m.live[:0]
	for _, e := range m.live {
		frame, ok := e.source.Next(sampleRate)
		if !ok {
			m.logger.Debugf("mixer: source %s finished", e.id)
			continue
		}
		sum = Add(sum, frame)
		live = append(live, e)
	}
	m.live = live
	return sum, true
}
