package tetris_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// onlyO always deals the O piece.
type onlyO struct{}

func (onlyO) IntN(int) int { return int(tetris.KindO) }

// ExampleSession fills the bottom two rows with five O pieces. The host calls
// commands directly and drives gravity with Tick.
func ExampleSession() {
	session := tetris.NewSession(tetris.Config{Rand: onlyO{}})
	session.Start()

	// The O piece spawns at column 3; shift each one to its slot and drop it.
	for _, shift := range []int{-3, -1, 1, 3, 5} {
		for ; shift < 0; shift++ {
			session.MoveLeft()
		}
		for ; shift > 0; shift-- {
			session.MoveRight()
		}
		session.HardDrop()
	}

	snap := session.Snapshot()
	fmt.Printf("score %d, lines %d, level %d\n", snap.Score, snap.Lines, snap.Level)

	session.Tick(1500 * time.Millisecond)
	fmt.Printf("piece at row %d\n", session.Snapshot().Active.Pos.Y)

	// Output:
	// score 300, lines 2, level 1
	// piece at row 1
}

// ExampleSession_listener shows the event stream a presentation layer can use
// to trigger effects.
func ExampleSession_listener() {
	session := tetris.NewSession(tetris.Config{
		Rand: onlyO{},
		Listener: func(e tetris.Event) {
			if e.Type == tetris.EventSpawn {
				return
			}
			fmt.Println(e.Type, e.Score)
		},
	})
	session.Start()
	session.Pause()
	session.Pause()
	session.Resume()
	session.HardDrop()

	// Output:
	// pause 0
	// resume 0
	// lock 0
}

func ExampleShape_Rotate() {
	shape := tetris.KindL.Shape()
	for range 4 {
		fmt.Println(shape)
		shape = shape.Rotate()
	}

	// Output:
	// ###/#..
	// ##/.#/.#
	// ..#/###
	// #./#./##
}
