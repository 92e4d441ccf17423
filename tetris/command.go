package tetris

import "fmt"

// Command is a player or host action that can be queued and applied later.
type Command uint8

const (
	CommandNone Command = iota
	CommandStart
	CommandPause
	CommandResume
	CommandTogglePause
	CommandRestart
	CommandMoveLeft
	CommandMoveRight
	CommandRotate
	CommandSoftDrop
	CommandHardDrop
)

var commandNames = [...]string{
	CommandNone:        "none",
	CommandStart:       "start",
	CommandPause:       "pause",
	CommandResume:      "resume",
	CommandTogglePause: "toggle-pause",
	CommandRestart:     "restart",
	CommandMoveLeft:    "move-left",
	CommandMoveRight:   "move-right",
	CommandRotate:      "rotate",
	CommandSoftDrop:    "soft-drop",
	CommandHardDrop:    "hard-drop",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// Apply runs cmd against the session. Unknown commands are ignored.
func (s *Session) Apply(cmd Command) {
	switch cmd {
	case CommandStart:
		s.Start()
	case CommandPause:
		s.Pause()
	case CommandResume:
		s.Resume()
	case CommandTogglePause:
		s.TogglePause()
	case CommandRestart:
		s.Restart()
	case CommandMoveLeft:
		s.MoveLeft()
	case CommandMoveRight:
		s.MoveRight()
	case CommandRotate:
		s.Rotate()
	case CommandSoftDrop:
		s.SoftDrop()
	case CommandHardDrop:
		s.HardDrop()
	}
}
