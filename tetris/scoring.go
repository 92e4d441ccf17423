package tetris

import "time"

const (
	pointsPerLevel      = 1000
	initialDropInterval = 1000 * time.Millisecond
	minDropInterval     = 100 * time.Millisecond
	dropIntervalStep    = 100 * time.Millisecond
)

// linePoints is indexed by the number of rows cleared by a single lock.
var linePoints = [...]int{0, 100, 300, 500, 800}

// ClearPoints returns the score awarded for clearing lines rows at level.
// Clears larger than the table use its last entry.
func ClearPoints(lines, level int) int {
	if lines <= 0 {
		return 0
	}
	if lines >= len(linePoints) {
		lines = len(linePoints) - 1
	}
	return linePoints[lines] * level
}

// LevelFor returns the level reached at score.
func LevelFor(score int) int {
	return score/pointsPerLevel + 1
}

// DropIntervalFor returns the gravity interval for level, never below 100ms.
func DropIntervalFor(level int) time.Duration {
	return max(minDropInterval, initialDropInterval-time.Duration(level-1)*dropIntervalStep)
}
