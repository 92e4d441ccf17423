// Package ebiten runs a loop.Scheduler from Ebiten's fixed-rate Update
// callback, one frame per tick.
package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/tetris/loop"
)

// Game implements ebiten.Game. Update advances the scheduler by one TPS
// period; drawing is left to the Render callback.
type Game struct {
	Scheduler *loop.Scheduler
	// TPS is the update rate passed to ebiten.SetTPS. Zero means
	// ebiten.DefaultTPS.
	TPS int
	// Width and Height are the logical screen size returned from Layout.
	// Zero means the outside size.
	Width, Height int
	// Render draws a frame. Nil leaves the screen untouched.
	Render func(screen *ebiten.Image)
	// Quit ends the game loop when it reports true.
	Quit func() bool
}

var _ ebiten.Game = (*Game)(nil)

func (g *Game) tps() int {
	if g.TPS <= 0 {
		return ebiten.DefaultTPS
	}
	return g.TPS
}

// FrameDelta returns the simulated time of one Update call.
func (g *Game) FrameDelta() time.Duration {
	return time.Second / time.Duration(g.tps())
}

func (g *Game) Update() error {
	if g.Quit != nil && g.Quit() {
		return ebiten.Termination
	}
	g.Scheduler.Once(g.FrameDelta())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.Render != nil {
		g.Render(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Width > 0 && g.Height > 0 {
		return g.Width, g.Height
	}
	return outsideWidth, outsideHeight
}

// Run configures the update rate and blocks in ebiten.RunGame.
func (g *Game) Run() error {
	ebiten.SetTPS(g.tps())
	return ebiten.RunGame(g)
}
