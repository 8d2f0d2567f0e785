package main

import (
	"fmt"
	"io"
	"time"

	"github.com/sheikhrachel/game-of-colors/driver"
	"github.com/sheikhrachel/game-of-colors/model"
	"github.com/sheikhrachel/game-of-colors/rules"
	"github.com/sheikhrachel/game-of-colors/utils"
)

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, d *driver.Driver) {
	config := d.Config()
	fmt.Fprintf(w, "Features: Memory Pool: %v, Auto Restart: %v, Workers: %d (0 = all CPUs)\n",
		config.UseMemoryPool, config.AutoRestart, config.Workers)
	fmt.Fprintf(w, "Grid: %dx%d %s | Seed: %d | Initial living cells: %d\n",
		config.Width, config.Height, config.WrapMode, d.Seed(), d.Grid().CountLivingCells())
	fmt.Fprintln(w, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(w)
}

// gameStatus summarizes a committed generation
func gameStatus(s model.Snapshot) (living int, density float64, status string) {
	pop := s.Population()
	living = pop.Total() - pop[rules.Empty]
	density = float64(living) / float64(s.Width*s.Height) * 100

	status = "Active"
	if living == 0 {
		status = "Extinct"
	}
	return living, density, status
}

// displayGameStatus shows the current game status
func displayGameStatus(w io.Writer, s model.Snapshot, stats utils.Stats) {
	living, density, status := gameStatus(s)
	pop := s.Population()

	fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		s.Generation, living, density, status)
	fmt.Fprintf(w, "Red: %d | Green: %d | Blue: %d | White: %d\n",
		pop[rules.Red], pop[rules.Green], pop[rules.Blue], pop[rules.White])
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	if stats.Restarts > 0 {
		fmt.Fprintf(w, " | Restarts: %d", stats.Restarts)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)
}

// displayFinalStats prints the summary shown on shutdown
func displayFinalStats(w io.Writer, d *driver.Driver) {
	stats := d.Stats()
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n",
		d.Ticks(), stats.Runtime().Round(time.Millisecond).Seconds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
