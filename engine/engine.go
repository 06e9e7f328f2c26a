package engine

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/matt-g-everett/algoviz/algo"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	clock  Clock
	delay  func(int) time.Duration
	logger *log.Logger
}

// WithClock replaces the wall clock used to schedule steps.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithDelay replaces the speed-to-delay mapping.
func WithDelay(delay func(int) time.Duration) Option {
	return func(o *options) { o.delay = delay }
}

// WithLogger logs session transitions to l.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

type command[F any] struct {
	apply func(*session[F])
	done  chan struct{}
}

// Engine plays back a sequence of frames at a controllable speed. All
// commands and steps run on a single loop goroutine, so a call that returns
// has fully taken effect: after Pause or Reset returns, no further frame is
// rendered. Render and completion callbacks run on that goroutine and must not
// call back into the Engine synchronously.
type Engine[F any] struct {
	cmds      chan command[F]
	quit      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// New creates an Engine and starts its loop.
func New[F any](opts ...Option) *Engine[F] {
	o := options{
		clock:  realClock{},
		delay:  Delay,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(&o)
	}

	e := new(Engine[F])
	e.cmds = make(chan command[F])
	e.quit = make(chan struct{})
	e.stopped = make(chan struct{})

	go e.run(newSession[F](o.clock, o.delay, o.logger))

	return e
}

func (e *Engine[F]) run(s *session[F]) {
	defer close(e.stopped)

	for {
		var tick <-chan time.Time
		var generation uint64
		if s.pending != nil {
			tick = s.pending.timer.C()
			generation = s.pending.generation
		}

		select {
		case cmd := <-e.cmds:
			cmd.apply(s)
			close(cmd.done)
		case <-tick:
			s.fire(generation)
		case <-e.quit:
			s.reset()
			return
		}
	}
}

// do runs fn on the loop and waits for it. It is a no-op once closed.
func (e *Engine[F]) do(fn func(*session[F])) {
	cmd := command[F]{apply: fn, done: make(chan struct{})}
	select {
	case e.cmds <- cmd:
		<-cmd.done
	case <-e.stopped:
	}
}

// Start retires any current session and plays frames from the beginning.
// The first frame is rendered before Start returns. onComplete may be nil.
func (e *Engine[F]) Start(frames []F, render RenderFunc[F], metrics algo.Metrics, speed int, onComplete func()) {
	e.do(func(s *session[F]) {
		s.start(frames, render, metrics, speed, onComplete)
	})
}

// Pause stops playback at the current frame.
func (e *Engine[F]) Pause() {
	e.do(func(s *session[F]) { s.pause() })
}

// Resume continues a paused session, or replays a completed one from the
// first frame, using the frames and callbacks given to Start.
func (e *Engine[F]) Resume() {
	e.do(func(s *session[F]) { s.resume() })
}

// Reset cancels playback and forgets the session.
func (e *Engine[F]) Reset() {
	e.do(func(s *session[F]) { s.reset() })
}

// SetSpeed changes the delay before the next frame.
func (e *Engine[F]) SetSpeed(speed int) {
	e.do(func(s *session[F]) { s.setSpeed(speed) })
}

// Status returns a snapshot of the current session.
func (e *Engine[F]) Status() Status {
	var st Status
	e.do(func(s *session[F]) { st = s.status() })
	return st
}

// Close resets the engine and stops its loop.
func (e *Engine[F]) Close() {
	e.closeOnce.Do(func() {
		close(e.quit)
	})
	<-e.stopped
}
