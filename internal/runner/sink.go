package runner

import (
	"sync"

	"github.com/vovakirdan/termtris/internal/games/tetris"
)

// Sink receives the snapshot produced by each driver iteration.
// Publish is called from the driver goroutine and must not block for long.
type Sink interface {
	Publish(snap tetris.Snapshot)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(snap tetris.Snapshot)

// Publish calls f(snap).
func (f SinkFunc) Publish(snap tetris.Snapshot) { f(snap) }

type nopSink struct{}

func (nopSink) Publish(tetris.Snapshot) {}

// Latest keeps only the newest snapshot for readers that poll at their own
// pace, such as a UI refreshing at a fixed frame rate.
type Latest struct {
	mu   sync.RWMutex
	snap tetris.Snapshot
	ok   bool
}

// Publish replaces the stored snapshot.
func (l *Latest) Publish(snap tetris.Snapshot) {
	l.mu.Lock()
	l.snap, l.ok = snap, true
	l.mu.Unlock()
}

// Load returns the newest snapshot and whether one was published yet.
func (l *Latest) Load() (tetris.Snapshot, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap, l.ok
}

// Fanout publishes every snapshot to each sink in order.
type Fanout []Sink

// Publish forwards snap to all sinks.
func (f Fanout) Publish(snap tetris.Snapshot) {
	for _, s := range f {
		s.Publish(snap)
	}
}
