package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
)

// Driver is the single owner of a tetris.Session. Each iteration of Run
// applies at most one pending action, then at most one gravity tick, then
// publishes a snapshot and sleeps for the loop tick.
type Driver struct {
	id       string
	seed     int64
	session  *tetris.Session
	mailbox  *Mailbox
	clock    Clock
	sink     Sink
	logger   *log.Logger
	loopTick time.Duration
	done     *atomic.Bool

	lastGravity time.Time
	elapsed     time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(d *Driver) { d.clock = c }
}

// WithSink sets where snapshots are published.
func WithSink(s Sink) Option {
	return func(d *Driver) { d.sink = s }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// New creates a session from cfg and a driver for it. A zero seed is
// replaced with one taken from the clock.
func New(cfg config.TetrisConfig, opts ...Option) *Driver {
	cfg.Normalize()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := tetris.NewSession(cfg, rand.New(rand.NewSource(seed)))
	d := NewDriver(session, time.Duration(cfg.Gravity.LoopTickMs)*time.Millisecond, opts...)
	d.seed = seed
	return d
}

// NewDriver wraps an existing session.
func NewDriver(session *tetris.Session, loopTick time.Duration, opts ...Option) *Driver {
	d := &Driver{
		id:       uuid.NewString(),
		session:  session,
		mailbox:  NewMailbox(),
		clock:    SystemClock{},
		sink:     nopSink{},
		logger:   log.New(io.Discard),
		loopTick: loopTick,
		done:     atomic.NewBool(false),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With("session", d.id)
	return d
}

// ID returns the unique id used in log lines.
func (d *Driver) ID() string { return d.id }

// Seed returns the RNG seed of a driver built by New, or 0.
func (d *Driver) Seed() int64 { return d.seed }

// Mailbox returns the mailbox input producers post to.
func (d *Driver) Mailbox() *Mailbox { return d.mailbox }

// Done reports whether Run has finished. It is safe to call from any goroutine.
func (d *Driver) Done() bool { return d.done.Load() }

// Run loops until the session reaches game over or quit and returns the
// final snapshot, which is also the last one published.
func (d *Driver) Run() tetris.Snapshot {
	d.logger.Info("session started", "seed", d.seed, "delay", d.session.Delay())
	d.lastGravity = d.clock.Now()
	d.elapsed = 0

	for {
		snap, finished := d.step()
		if finished {
			d.done.Store(true)
			d.logger.Info("session ended",
				"state", snap.State,
				"score", snap.Stats.Score,
				"lines", snap.Stats.Lines,
				"level", snap.Stats.Level)
			return snap
		}
		d.clock.Sleep(d.loopTick)
	}
}

// step runs one loop iteration and reports whether the session is over.
func (d *Driver) step() (tetris.Snapshot, bool) {
	if a := d.mailbox.Take(); a != core.ActionNone {
		d.apply(a, false)
	}

	if !d.session.Done() {
		now := d.clock.Now()
		d.elapsed += now.Sub(d.lastGravity)
		d.lastGravity = now
		if d.elapsed > d.session.Delay() {
			d.elapsed = 0
			d.apply(core.ActionSoftDown, true)
		}
	}

	snap := d.session.Snapshot()
	d.sink.Publish(snap)
	return snap, d.session.Done()
}

func (d *Driver) apply(a core.Action, gravity bool) {
	before := d.session.Stats()

	var err error
	if gravity {
		err = d.session.Tick()
	} else {
		err = d.session.Apply(a)
	}

	after := d.session.Stats()
	if cleared := after.Lines - before.Lines; cleared > 0 {
		d.logger.Debug("lines cleared", "count", cleared, "score", after.Score, "level", after.Level)
	}
	if after.Level != before.Level {
		d.logger.Debug("level up", "level", after.Level, "delay", d.session.Delay())
	}

	switch {
	case err != nil:
		d.logger.Info("game over", "reason", err)
	case a == core.ActionQuit:
		d.logger.Info("quit requested")
	}
}
