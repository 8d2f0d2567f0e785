package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/game-of-colors/driver"
	"github.com/sheikhrachel/game-of-colors/tui"
)

var (
	flagSteps int
	flagQuiet bool
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Advance a number of generations without a display",
	Long: `Advance the simulation headless and print the final grid and stats.

The same seed always produces the same grid, which makes step useful for
comparing rule parameters.

Examples:
  goc step -n 100 --seed 42
  goc step -n 1000 --quiet --log-level debug`,
	RunE: runStep,
}

func init() {
	stepCmd.Flags().IntVarP(&flagSteps, "generations", "n", 1, "Number of generations to advance")
	stepCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Print only the stats")
}

func runStep(cmd *cobra.Command, _ []string) error {
	if flagSteps < 0 {
		return errors.Errorf("[runStep] generations must not be negative, got %d", flagSteps)
	}

	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}

	d, err := driver.New(config, driver.WithLogger(logger))
	if err != nil {
		return err
	}
	for i := 0; i < flagSteps; i++ {
		if err := d.Tick(); err != nil {
			return err
		}
	}

	snap := d.Snapshot()
	if !flagQuiet {
		tui.NewTerminalRenderer(os.Stdout).Display(snap)
	}
	displayGameStatus(os.Stdout, snap, d.Stats())
	return nil
}
