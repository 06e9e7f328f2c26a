package engine

import (
	"log"
	"time"

	"github.com/matt-g-everett/algoviz/algo"
)

// State is the playback state of the engine.
type State int

const (
	Idle State = iota
	Playing
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// RenderFunc is called once per frame with the frame and its index.
type RenderFunc[F any] func(frame F, index int)

// Status is a snapshot of the engine's session.
type Status struct {
	State    State
	Cursor   int
	Length   int
	Progress float64
	Speed    int
	Metrics  algo.Metrics

	// IsAnimating stays true after completion so a finished run can be
	// replayed or reset. IsPaused is true both when paused and when complete.
	IsAnimating bool
	IsPaused    bool
}

// pendingStep is the single scheduled wake-up of a session, tagged with the
// generation it was scheduled under.
type pendingStep struct {
	generation uint64
	timer      Timer
}

// session is the state machine behind Engine. It is only ever touched from the
// engine loop goroutine.
type session[F any] struct {
	clock  Clock
	delay  func(int) time.Duration
	logger *log.Logger

	generation uint64
	pending    *pendingStep

	state      State
	frames     []F
	cursor     int
	progress   float64
	speed      int
	metrics    algo.Metrics
	render     RenderFunc[F]
	onComplete func()
}

func newSession[F any](clock Clock, delay func(int) time.Duration, logger *log.Logger) *session[F] {
	s := new(session[F])
	s.clock = clock
	s.delay = delay
	s.logger = logger
	s.speed = DefaultSpeed
	return s
}

// cancel retires any scheduled step. A step that still fires afterwards
// carries an old generation and is dropped.
func (s *session[F]) cancel() {
	s.generation++
	if s.pending != nil {
		s.pending.timer.Stop()
		s.pending = nil
	}
}

func (s *session[F]) start(frames []F, render RenderFunc[F], metrics algo.Metrics, speed int, onComplete func()) {
	s.cancel()

	s.frames = frames
	s.render = render
	s.metrics = metrics
	s.onComplete = onComplete
	s.speed = ClampSpeed(speed)
	s.cursor = 0
	s.progress = 0
	s.state = Playing

	s.logger.Printf("session %d: playing %d frames at speed %d", s.generation, len(frames), s.speed)
	s.step()
}

func (s *session[F]) pause() {
	if s.state != Playing {
		return
	}
	s.cancel()
	s.state = Paused
	s.logger.Printf("session %d: paused at frame %d/%d", s.generation, s.cursor, len(s.frames))
}

func (s *session[F]) resume() {
	if s.state != Paused && s.state != Completed {
		return
	}
	if s.cursor >= len(s.frames) {
		s.cursor = 0
		s.progress = 0
	}
	s.cancel()
	s.state = Playing
	s.logger.Printf("session %d: resumed at frame %d/%d", s.generation, s.cursor, len(s.frames))
	s.step()
}

func (s *session[F]) reset() {
	s.cancel()
	s.frames = nil
	s.render = nil
	s.onComplete = nil
	s.metrics = algo.Metrics{}
	s.cursor = 0
	s.progress = 0
	s.state = Idle
}

func (s *session[F]) setSpeed(speed int) {
	if s.state == Idle {
		return
	}
	s.speed = ClampSpeed(speed)
}

// fire runs the step scheduled under generation, unless it has been retired.
func (s *session[F]) fire(generation uint64) {
	if s.pending == nil || s.pending.generation != generation {
		return
	}
	s.pending = nil
	if generation != s.generation || s.state != Playing {
		return
	}
	s.step()
}

func (s *session[F]) step() {
	if s.cursor < len(s.frames) {
		if s.render != nil {
			s.render(s.frames[s.cursor], s.cursor)
		}
		s.cursor++
		s.progress = float64(s.cursor) / float64(len(s.frames))
	}

	if s.cursor >= len(s.frames) {
		s.complete()
		return
	}

	s.pending = &pendingStep{
		generation: s.generation,
		timer:      s.clock.NewTimer(s.delay(s.speed)),
	}
}

func (s *session[F]) complete() {
	s.state = Completed
	s.progress = 1
	s.logger.Printf("session %d: completed %d frames", s.generation, len(s.frames))

	if s.onComplete != nil {
		s.onComplete()
	}
}

func (s *session[F]) status() Status {
	return Status{
		State:       s.state,
		Cursor:      s.cursor,
		Length:      len(s.frames),
		Progress:    s.progress,
		Speed:       s.speed,
		Metrics:     s.metrics,
		IsAnimating: s.state != Idle,
		IsPaused:    s.state == Paused || s.state == Completed,
	}
}
