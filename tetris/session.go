package tetris

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// State is the lifecycle stage of a Session.
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Source picks the next piece. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Config holds the collaborators of a Session. Every field is optional.
type Config struct {
	// Scheduler delivers ticks while the game is running. When nil the host
	// calls Tick itself.
	Scheduler Scheduler
	// Rand picks pieces. Defaults to the global math/rand/v2 source.
	Rand Source
	// Listener is called synchronously for every Event.
	Listener func(Event)
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Session runs one game at a time: spawn, fall, lock, clear, spawn. It is not
// safe for concurrent use; ticks and commands must come from one goroutine.
type Session struct {
	field  *Playfield
	active Piece
	next   Piece

	state        State
	score        int
	level        int
	lines        int
	dropInterval time.Duration
	dropCounter  time.Duration

	scheduler Scheduler
	rand      Source
	listener  func(Event)
	stats     *Stats
}

// NewSession returns an idle session.
func NewSession(cfg Config) *Session {
	s := &Session{
		field:        NewPlayfield(),
		level:        1,
		dropInterval: initialDropInterval,
		scheduler:    cfg.Scheduler,
		rand:         cfg.Rand,
		listener:     cfg.Listener,
		stats:        newStats(),
	}
	if s.scheduler == nil {
		s.scheduler = manualScheduler{}
	}
	if s.rand == nil {
		s.rand = globalSource{}
	}
	return s
}

// State returns the current lifecycle stage.
func (s *Session) State() State { return s.state }

func (s *Session) Score() int                  { return s.score }
func (s *Session) Level() int                  { return s.level }
func (s *Session) Lines() int                  { return s.lines }
func (s *Session) DropInterval() time.Duration { return s.dropInterval }

// Stats returns a copy of the lifetime counters.
func (s *Session) Stats() *Stats {
	return s.stats.clone()
}

// Start begins a new game. It does nothing while a game is running or paused.
func (s *Session) Start() {
	if s.state == StateRunning || s.state == StatePaused {
		return
	}

	s.reset()
	s.state = StateRunning
	s.stats.Games++
	s.next = s.generate()
	s.spawnPiece()

	if s.state == StateRunning {
		s.scheduler.Start(s)
	}
}

// Restart abandons the current game, if any, and starts a new one.
func (s *Session) Restart() {
	if s.state == StateIdle {
		return
	}
	s.scheduler.Stop()
	s.state = StateIdle
	s.Start()
}

// Pause suspends the game. Pausing a paused game is a no-op.
func (s *Session) Pause() {
	if s.state != StateRunning {
		return
	}
	s.state = StatePaused
	s.scheduler.Stop()
	s.emit(Event{Type: EventPause})
}

// Resume continues a paused game. The drop counter carries over from before
// the pause.
func (s *Session) Resume() {
	if s.state != StatePaused {
		return
	}
	s.state = StateRunning
	s.scheduler.Start(s)
	s.emit(Event{Type: EventResume})
}

// TogglePause pauses a running game or resumes a paused one.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.Pause()
	case StatePaused:
		s.Resume()
	}
}

// Tick advances gravity by dt. When the accumulated time exceeds the drop
// interval the piece falls one row.
func (s *Session) Tick(dt time.Duration) {
	if s.state != StateRunning {
		return
	}

	s.dropCounter += dt
	if s.dropCounter > s.dropInterval {
		s.SoftDrop()
	}
}

// MoveLeft shifts the piece one column left if there is room.
func (s *Session) MoveLeft() {
	if s.state != StateRunning {
		return
	}
	s.attempt(moveBy(-1, 0))
}

// MoveRight shifts the piece one column right if there is room.
func (s *Session) MoveRight() {
	if s.state != StateRunning {
		return
	}
	s.attempt(moveBy(1, 0))
}

// Rotate turns the piece clockwise in place. A blocked rotation leaves the
// piece untouched; no wall kicks are tried.
func (s *Session) Rotate() {
	if s.state != StateRunning {
		return
	}
	s.attempt(rotateClockwise)
}

// SoftDrop moves the piece down one row, locking it if it cannot move.
func (s *Session) SoftDrop() {
	if s.state != StateRunning {
		return
	}

	s.dropCounter = 0
	if !s.attempt(moveBy(0, 1)) {
		s.lock()
	}
}

// HardDrop drops the piece to its landing row and locks it.
func (s *Session) HardDrop() {
	if s.state != StateRunning {
		return
	}

	for s.attempt(moveBy(0, 1)) {
	}
	s.stats.HardDrops++
	s.lock()
}

// attempt applies transform to a copy of the active piece and keeps the
// result only if it does not collide.
func (s *Session) attempt(transform func(*Piece)) bool {
	candidate := s.active
	transform(&candidate)
	if s.field.Collides(candidate.Shape, candidate.Pos) {
		return false
	}
	s.active = candidate
	return true
}

func (s *Session) lock() {
	if err := s.field.Merge(s.active.Shape, s.active.Pos, s.active.Kind); err != nil {
		panic(fmt.Errorf("lock %s at %v: %w", s.active.Kind, s.active.Pos, err))
	}

	cleared := s.field.ClearFullRows()
	s.emit(Event{Type: EventLock, Kind: s.active.Kind, Pos: s.active.Pos, Lines: cleared})
	s.award(cleared)
	s.stats.recordLock(cleared, s.score, s.level)

	s.spawnPiece()
}

func (s *Session) award(cleared int) {
	if cleared == 0 {
		return
	}

	s.lines += cleared
	s.score += ClearPoints(cleared, s.level)
	s.emit(Event{Type: EventLineClear, Lines: cleared})

	if level := LevelFor(s.score); level != s.level {
		s.level = level
		s.dropInterval = DropIntervalFor(level)
		s.emit(Event{Type: EventLevelUp, Level: level})
	}
}

func (s *Session) spawnPiece() {
	s.active = s.next
	s.next = s.generate()

	if s.field.Collides(s.active.Shape, s.active.Pos) {
		s.state = StateGameOver
		s.scheduler.Stop()
		s.emit(Event{Type: EventGameOver, Kind: s.active.Kind, Pos: s.active.Pos})
		return
	}
	s.stats.recordSpawn(s.active.Kind)
	s.emit(Event{Type: EventSpawn, Kind: s.active.Kind, Pos: s.active.Pos})
}

func (s *Session) generate() Piece {
	return newPiece(Kind(s.rand.IntN(NumKinds)))
}

func (s *Session) reset() {
	s.field.Reset()
	s.score = 0
	s.level = 1
	s.lines = 0
	s.dropInterval = initialDropInterval
	s.dropCounter = 0
	s.active = Piece{}
	s.next = Piece{}
}

func (s *Session) emit(e Event) {
	if s.listener == nil {
		return
	}
	e.Score = s.score
	if e.Level == 0 {
		e.Level = s.level
	}
	s.listener(e)
}
