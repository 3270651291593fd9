package utils

import "time"

// historySize is how many recent board hashes are kept for cycle detection
const historySize = 5

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	DirtyArea            int

	history []string
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation's population, dirty area and step duration
func (s *Stats) Update(generation, population, dirtyArea int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	s.DirtyArea = dirtyArea
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Observe checks a board hash against recent history, then records it.
// It reports true when the board repeats one of the last three generations,
// which covers still lifes and period-2 and period-3 oscillators.
func (s *Stats) Observe(hash string) (stagnant bool) {
	for i := len(s.history) - 1; i >= 0 && i >= len(s.history)-3; i-- {
		if s.history[i] == hash {
			stagnant = true
			break
		}
	}

	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
	return stagnant
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
