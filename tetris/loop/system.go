package loop

// System is per-frame behavior run by the Scheduler before the session is
// ticked. Systems can keep state between frames and queue session commands
// through frame.Commands.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) { f(frame) }
