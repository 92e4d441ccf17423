package tetris

import "iter"

// SpawnPoint is where new pieces appear: column 3, row 0.
var SpawnPoint = Point{X: 3, Y: 0}

// Piece is a falling piece. It owns its shape, so rotating one piece never
// affects another or the catalog.
type Piece struct {
	Kind  Kind
	Shape Shape
	Pos   Point
}

func newPiece(k Kind) Piece {
	return Piece{
		Kind:  k,
		Shape: k.Shape().Clone(),
		Pos:   SpawnPoint,
	}
}

// Color returns the catalog color of the piece.
func (p Piece) Color() Color {
	return p.Kind.Color()
}

// Cells yields the field coordinates covered by the piece.
func (p Piece) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for cell := range p.Shape.Cells() {
			if !yield(Point{X: p.Pos.X + cell.X, Y: p.Pos.Y + cell.Y}) {
				return
			}
		}
	}
}

func moveBy(dx, dy int) func(*Piece) {
	return func(p *Piece) {
		p.Pos.X += dx
		p.Pos.Y += dy
	}
}

func rotateClockwise(p *Piece) {
	p.Shape = p.Shape.Rotate()
}
