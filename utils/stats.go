package utils

import (
	"time"

	"github.com/sheikhrachel/game-of-colors/rules"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Population           rules.Counts
	Restarts             int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one committed generation. Population counts every non-empty cell.
func (s *Stats) Update(generation int, population rules.Counts, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	living := float64(population.Total() - population[rules.Empty])

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = living
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (living * 0.1)
	}
}

// Runtime returns the time since the stats were created
func (s Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
