package tetris

// EventType identifies what happened in an Event.
type EventType uint8

const (
	EventSpawn EventType = iota + 1
	EventLock
	EventLineClear
	EventLevelUp
	EventGameOver
	EventPause
	EventResume
)

func (t EventType) String() string {
	switch t {
	case EventSpawn:
		return "spawn"
	case EventLock:
		return "lock"
	case EventLineClear:
		return "line-clear"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	default:
		return "unknown"
	}
}

// Event reports a state change to the session listener. Score and Level are
// the values after the change.
type Event struct {
	Type  EventType
	Kind  Kind
	Pos   Point
	Lines int
	Score int
	Level int
}
