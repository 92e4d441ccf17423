package tetris

import "github.com/kamstrup/intmap"

// Stats accumulates counters over the lifetime of a Session, across restarts.
type Stats struct {
	Games     int
	Locks     int
	HardDrops int
	Lines     int
	TopScore  int
	TopLevel  int

	spawns   *intmap.Map[Kind, int]
	clears   *intmap.Map[int, int]
	maxClear int
}

func newStats() *Stats {
	return &Stats{
		spawns: intmap.New[Kind, int](NumKinds),
		clears: intmap.New[int, int](8),
	}
}

// Spawns returns how many pieces of kind k have been spawned.
func (s *Stats) Spawns(k Kind) int {
	n, _ := s.spawns.Get(k)
	return n
}

// Clears returns how many locks removed exactly lines rows.
func (s *Stats) Clears(lines int) int {
	n, _ := s.clears.Get(lines)
	return n
}

// MaxClear returns the largest number of rows removed by a single lock.
func (s *Stats) MaxClear() int {
	return s.maxClear
}

func (s *Stats) recordSpawn(k Kind) {
	n, _ := s.spawns.Get(k)
	s.spawns.Put(k, n+1)
}

func (s *Stats) recordLock(lines, score, level int) {
	s.Locks++
	s.Lines += lines

	n, _ := s.clears.Get(lines)
	s.clears.Put(lines, n+1)
	s.maxClear = max(s.maxClear, lines)

	s.TopScore = max(s.TopScore, score)
	s.TopLevel = max(s.TopLevel, level)
}

func (s *Stats) clone() *Stats {
	out := *s
	out.spawns = intmap.New[Kind, int](NumKinds)
	for k := Kind(0); k < NumKinds; k++ {
		if n, ok := s.spawns.Get(k); ok {
			out.spawns.Put(k, n)
		}
	}
	out.clears = intmap.New[int, int](s.maxClear + 1)
	for lines := 0; lines <= s.maxClear; lines++ {
		if n, ok := s.clears.Get(lines); ok {
			out.clears.Put(lines, n)
		}
	}
	return &out
}
