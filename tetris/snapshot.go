package tetris

import "time"

// PieceView is a read-only copy of a piece for presentation.
type PieceView struct {
	Kind  Kind
	Shape Shape
	Pos   Point
	Color Color
}

func viewOf(p Piece) PieceView {
	return PieceView{
		Kind:  p.Kind,
		Shape: p.Shape.Clone(),
		Pos:   p.Pos,
		Color: p.Color(),
	}
}

// Snapshot is everything a presentation layer needs to draw a frame. It shares
// no memory with the session.
type Snapshot struct {
	Field [][]Cell
	// Active is only meaningful when HasPiece is true.
	Active   PieceView
	HasPiece bool
	// Ghost is where Active would land after a hard drop.
	Ghost Point
	Next  PieceView

	Score        int
	Level        int
	Lines        int
	DropInterval time.Duration
	State        State
	GameOver     bool
	Paused       bool
}

// Snapshot captures the current game state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Field:        s.field.Rows(),
		Score:        s.score,
		Level:        s.level,
		Lines:        s.lines,
		DropInterval: s.dropInterval,
		State:        s.state,
		GameOver:     s.state == StateGameOver,
		Paused:       s.state == StatePaused,
	}

	if s.state == StateIdle {
		return snap
	}

	snap.HasPiece = true
	snap.Active = viewOf(s.active)
	snap.Next = viewOf(s.next)
	snap.Ghost = s.ghost()
	return snap
}

func (s *Session) ghost() Point {
	pos := s.active.Pos
	if s.state == StateGameOver {
		return pos
	}
	for !s.field.Collides(s.active.Shape, Point{X: pos.X, Y: pos.Y + 1}) {
		pos.Y++
	}
	return pos
}
