package tetris

import (
	"errors"
	"fmt"
	"iter"
)

// ErrMalformedShape is returned when a shape matrix is empty or not rectangular.
var ErrMalformedShape = errors.New("malformed shape")

// Kind identifies one of the catalog pieces.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// NumKinds is the number of pieces in the catalog.
const NumKinds = 7

var kindNames = [NumKinds]string{"I", "O", "T", "L", "J", "S", "Z"}

func (k Kind) String() string {
	if int(k) < NumKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Shape returns the catalog shape for the kind in its spawn orientation.
func (k Kind) Shape() Shape {
	return catalogShapes[k]
}

// Color returns the catalog color for the kind.
func (k Kind) Color() Color {
	return catalogColors[k]
}

// Color is a 24-bit RGB value. It implements image/color.Color so hosts can
// hand it straight to a drawing library.
type Color uint32

// RGBA implements color.Color. Catalog colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>16) & 0xff
	g = uint32(c>>8) & 0xff
	b = uint32(c) & 0xff
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

func (c Color) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xffffff)
}

// Shape is an immutable rectangular boolean matrix describing a piece in one
// orientation.
type Shape struct {
	rows  int
	cols  int
	cells []bool
}

// NewShape builds a shape from a row-major matrix.
func NewShape(matrix [][]bool) (Shape, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return Shape{}, fmt.Errorf("%w: empty matrix", ErrMalformedShape)
	}

	cols := len(matrix[0])
	cells := make([]bool, 0, len(matrix)*cols)
	for i, row := range matrix {
		if len(row) != cols {
			return Shape{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedShape, i, len(row), cols)
		}
		cells = append(cells, row...)
	}

	return Shape{rows: len(matrix), cols: cols, cells: cells}, nil
}

// MustShape is like NewShape but panics on malformed input.
func MustShape(matrix [][]bool) Shape {
	s, err := NewShape(matrix)
	if err != nil {
		panic(err)
	}
	return s
}

// Rows returns the matrix height.
func (s Shape) Rows() int { return s.rows }

// Cols returns the matrix width.
func (s Shape) Cols() int { return s.cols }

// At reports whether the cell at (row, col) is set. Out-of-range cells are unset.
func (s Shape) At(row, col int) bool {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return false
	}
	return s.cells[row*s.cols+col]
}

// Cells yields the (col, row) offset of every set cell in row-major order.
func (s Shape) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i, set := range s.cells {
			if !set {
				continue
			}
			if !yield(Point{X: i % s.cols, Y: i / s.cols}) {
				return
			}
		}
	}
}

// Matrix returns a fresh row-major copy of the shape.
func (s Shape) Matrix() [][]bool {
	out := make([][]bool, s.rows)
	for r := range out {
		out[r] = make([]bool, s.cols)
		copy(out[r], s.cells[r*s.cols:(r+1)*s.cols])
	}
	return out
}

// Clone returns a copy that shares no storage with s.
func (s Shape) Clone() Shape {
	cells := make([]bool, len(s.cells))
	copy(cells, s.cells)
	return Shape{rows: s.rows, cols: s.cols, cells: cells}
}

// Rotate returns the shape turned 90° clockwise: transpose, then reverse each
// resulting row.
func (s Shape) Rotate() Shape {
	rotated := Shape{rows: s.cols, cols: s.rows, cells: make([]bool, len(s.cells))}
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			rotated.cells[c*rotated.cols+(s.rows-1-r)] = s.cells[r*s.cols+c]
		}
	}
	return rotated
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.rows != other.rows || s.cols != other.cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (s Shape) String() string {
	buf := make([]byte, 0, s.rows*(s.cols+1))
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			buf = append(buf, '/')
		}
		for c := 0; c < s.cols; c++ {
			if s.cells[r*s.cols+c] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}

var catalogShapes = func() [NumKinds]Shape {
	const x, o = true, false
	return [NumKinds]Shape{
		KindI: MustShape([][]bool{{x, x, x, x}}),
		KindO: MustShape([][]bool{{x, x}, {x, x}}),
		KindT: MustShape([][]bool{{x, x, x}, {o, x, o}}),
		KindL: MustShape([][]bool{{x, x, x}, {x, o, o}}),
		KindJ: MustShape([][]bool{{x, x, x}, {o, o, x}}),
		KindS: MustShape([][]bool{{x, x, o}, {o, x, x}}),
		KindZ: MustShape([][]bool{{o, x, x}, {x, x, o}}),
	}
}()

var catalogColors = [NumKinds]Color{
	KindI: 0xFF0D72,
	KindO: 0x0DC2FF,
	KindT: 0x0DFF72,
	KindL: 0xF538FF,
	KindJ: 0xFF8E0D,
	KindS: 0xFFE138,
	KindZ: 0x3877FF,
}

// Shapes returns the catalog shapes in Kind order.
func Shapes() []Shape {
	out := make([]Shape, NumKinds)
	copy(out, catalogShapes[:])
	return out
}

// ColorFor returns the color paired with the shape at index k.
func ColorFor(k Kind) Color {
	return catalogColors[k]
}
