package tetris

import (
	"errors"
	"fmt"
)

const (
	Width  = 10
	Height = 20
)

var (
	// ErrMalformedField is returned when playfield rows are empty or ragged.
	ErrMalformedField = errors.New("malformed playfield")
	// ErrCollision is returned when merging a piece that overlaps the walls,
	// the floor, or an occupied cell.
	ErrCollision = errors.New("piece collides")
	// ErrOutOfBounds is returned when merging a piece with cells above row 0.
	ErrOutOfBounds = errors.New("piece out of bounds")
)

// Point is a column (X) and row (Y) pair. Row 0 is the top of the field.
type Point struct {
	X, Y int
}

// Cell is a single playfield square. The zero value is empty.
type Cell struct {
	Occupied bool
	Kind     Kind
	Color    Color
}

func filledCell(k Kind) Cell {
	return Cell{Occupied: true, Kind: k, Color: k.Color()}
}

// Playfield is a fixed-size grid of cells. Every row always holds exactly
// Width() cells.
type Playfield struct {
	width  int
	height int
	rows   [][]Cell
}

// NewPlayfield returns an empty Width x Height field.
func NewPlayfield() *Playfield {
	p := &Playfield{width: Width, height: Height}
	p.Reset()
	return p
}

// PlayfieldFromRows builds a field from row-major cells. The rows are copied.
func PlayfieldFromRows(rows [][]Cell) (*Playfield, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrMalformedField)
	}

	width := len(rows[0])
	p := &Playfield{width: width, height: len(rows), rows: make([][]Cell, len(rows))}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedField, y, len(row), width)
		}
		p.rows[y] = make([]Cell, width)
		copy(p.rows[y], row)
	}
	return p, nil
}

// Reset empties every cell.
func (p *Playfield) Reset() {
	p.rows = make([][]Cell, p.height)
	for y := range p.rows {
		p.rows[y] = make([]Cell, p.width)
	}
}

func (p *Playfield) Width() int  { return p.width }
func (p *Playfield) Height() int { return p.height }

// At returns the cell at (row, col), or an empty cell outside the grid.
func (p *Playfield) At(row, col int) Cell {
	if !p.inside(row, col) {
		return Cell{}
	}
	return p.rows[row][col]
}

// IsOccupied reports whether (row, col) holds a piece. Coordinates outside the
// grid are never occupied; bounds are handled by Collides.
func (p *Playfield) IsOccupied(row, col int) bool {
	return p.At(row, col).Occupied
}

// Collides reports whether shape placed with its top-left corner at pos would
// hit the floor, a side wall, or an occupied cell. Cells above row 0 are
// allowed so pieces can spawn partially hidden.
func (p *Playfield) Collides(shape Shape, pos Point) bool {
	for cell := range shape.Cells() {
		x := pos.X + cell.X
		y := pos.Y + cell.Y

		if y >= p.height || x < 0 || x >= p.width {
			return true
		}

		if p.IsOccupied(y, x) {
			return true
		}
	}
	return false
}

// Merge writes every set cell of shape at pos into the field. The field is
// not modified when an error is returned.
func (p *Playfield) Merge(shape Shape, pos Point, kind Kind) error {
	for cell := range shape.Cells() {
		x := pos.X + cell.X
		y := pos.Y + cell.Y

		if y < 0 && x >= 0 && x < p.width {
			return fmt.Errorf("%w: cell (%d,%d) above the field", ErrOutOfBounds, x, y)
		}
		if y >= p.height || x < 0 || x >= p.width || p.rows[y][x].Occupied {
			return fmt.Errorf("%w: cell (%d,%d)", ErrCollision, x, y)
		}
	}

	filled := filledCell(kind)
	for cell := range shape.Cells() {
		p.rows[pos.Y+cell.Y][pos.X+cell.X] = filled
	}
	return nil
}

// RowFull reports whether every cell in row y is occupied.
func (p *Playfield) RowFull(y int) bool {
	if y < 0 || y >= p.height {
		return false
	}
	for _, cell := range p.rows[y] {
		if !cell.Occupied {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above down and
// inserting empty rows at the top. It returns the number of rows removed.
func (p *Playfield) ClearFullRows() int {
	cleared := 0
	for y := p.height - 1; y >= 0; y-- {
		if !p.RowFull(y) {
			continue
		}

		copy(p.rows[1:y+1], p.rows[:y])
		p.rows[0] = make([]Cell, p.width)
		cleared++

		// The row that moved into y has not been examined yet.
		y++
	}
	return cleared
}

// Rows returns a deep copy of the grid, top row first.
func (p *Playfield) Rows() [][]Cell {
	out := make([][]Cell, p.height)
	for y, row := range p.rows {
		out[y] = make([]Cell, p.width)
		copy(out[y], row)
	}
	return out
}

// Filled returns the number of occupied cells.
func (p *Playfield) Filled() int {
	n := 0
	for _, row := range p.rows {
		for _, cell := range row {
			if cell.Occupied {
				n++
			}
		}
	}
	return n
}

func (p *Playfield) inside(row, col int) bool {
	return row >= 0 && row < p.height && col >= 0 && col < p.width
}
