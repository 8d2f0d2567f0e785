package driver

import (
	"time"

	"github.com/sheikhrachel/game-of-colors/model"
	"github.com/sheikhrachel/game-of-colors/rules"
	"github.com/sheikhrachel/game-of-colors/utils"
)

// updateGameState records stats and history for the generation just committed
// and applies auto-restart. Must be called with d.mu held.
func (d *Driver) updateGameState(frameStart time.Time) {
	population := d.grid.Population()
	livingCells := population.Total() - population[rules.Empty]

	d.stats.Update(d.grid.Generation(), population, frameStart.Sub(d.lastTick))
	d.lastTick = frameStart

	// Compare against history before recording the current state
	if d.grid.IsStagnant() {
		d.stagnantCount++
	} else {
		d.stagnantCount = 0
	}
	// History records the state that gets rendered, after any restart or injection
	defer d.grid.UpdateHistory()

	if !d.cfg.AutoRestart {
		return
	}

	shouldRestart, restartReason := checkRestartConditions(livingCells, d.stagnantCount, d.cfg)
	switch {
	case shouldRestart:
		d.restartGame(restartReason)
	case d.stagnantCount >= 2 && d.cfg.InjectionCount > 0:
		// Inject some life to try to break the stagnation
		d.grid.InjectRandomLife(d.cfg.InjectionCount, d.rng)
		d.logger.Debug("injected random life",
			"count", d.cfg.InjectionCount,
			"stagnant", d.stagnantCount,
		)
	}
}

// checkRestartConditions determines if the run should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds the grid with a seed drawn from the run's generator.
// Must be called with d.mu held.
func (d *Driver) restartGame(reason string) {
	generation := d.grid.Generation()
	seed := d.rng.Int64()

	if err := d.grid.Reseed(d.strategy, d.cfg.Density, model.NewRNG(seed)); err != nil {
		d.logger.Error("restart failed", "reason", reason, "error", err)
		return
	}
	d.stats.Restarts++
	d.stagnantCount = 0

	d.logger.Info("restarting",
		"reason", reason,
		"generation", generation,
		"living", d.grid.CountLivingCells(),
	)
}
