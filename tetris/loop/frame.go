package loop

import "time"

type Frame struct {
	// Number is the 1-based index of the frame.
	Number   int64
	Delta    time.Duration
	Commands *Commands
}

func newFrame(number int64, dt time.Duration, commands *Commands) *Frame {
	return &Frame{
		Number:   number,
		Delta:    dt,
		Commands: commands,
	}
}
