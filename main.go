// goc runs the Game of Colors, a five-state cellular automaton, in the terminal.
//
// Usage:
//
//	goc run               - Interactive view (use --plain for the line renderer)
//	goc step -n <gens>    - Advance headless and print the final grid
//	goc rules             - Show the effective rule parameters
//	goc serve             - Start SSH server, one simulation per session
//	goc window            - Open a window (requires -tags ebiten)
//
// Global flags:
//
//	--config <path> - JSON or YAML config (default: config.json if present)
//	--seed <value>  - RNG seed (0 = random based on time)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/game-of-colors/utils"
)

const defaultConfigFile = "config.json"

var (
	// Global flags
	flagConfig   string
	flagWidth    int
	flagHeight   int
	flagWrap     string
	flagRate     float64
	flagSeed     int64
	flagStrategy string
	flagDensity  float64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goc",
	Short: "Game of Colors - a five-color cellular automaton",
	Long: `Game of Colors is a cellular automaton in the spirit of Conway's Game of Life.
Cells are empty, red, green, blue or white. Every tick each cell looks at the colors
of its eight neighbors: colors survive, spread into empty cells, and blend into white
when all three meet.

Available commands:
  run      - Watch the simulation in the terminal
  step     - Advance a number of generations without a display
  rules    - Print the rule parameters in effect
  serve    - Start SSH server for remote viewing
  window   - Open a graphical window (ebiten builds only)

Examples:
  goc run
  goc run --wrap clipped --rate 10
  goc step -n 100 --seed 42
  goc serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Grid width in cells")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Grid height in cells")
	rootCmd.PersistentFlags().StringVar(&flagWrap, "wrap", "", "Edge handling: toroidal or clipped")
	rootCmd.PersistentFlags().Float64Var(&flagRate, "rate", 0, "Ticks per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStrategy, "strategy", "", "Seeding strategy: uniform, sparse or empty")
	rootCmd.PersistentFlags().Float64Var(&flagDensity, "density", 0, "Share of living cells for the sparse strategy")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
}

// loadConfig reads the config file, falling back to defaults when the implicit
// config.json does not exist, and applies every flag the user set on top
func loadConfig(cmd *cobra.Command) (utils.Config, error) {
	config := utils.DefaultConfig()

	path := flagConfig
	if path == "" {
		if _, statErr := os.Stat(defaultConfigFile); statErr == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		var err error
		if config, err = utils.LoadConfig(path); err != nil {
			return config, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		config.Width = flagWidth
	}
	if flags.Changed("height") {
		config.Height = flagHeight
	}
	if flags.Changed("wrap") {
		config.WrapMode = flagWrap
	}
	if flags.Changed("rate") {
		config.TickRateHz = flagRate
	}
	if flags.Changed("seed") {
		config.Seed = flagSeed
	}
	if flags.Changed("strategy") {
		config.SeedStrategy = flagStrategy
	}
	if flags.Changed("density") {
		config.Density = flagDensity
	}
	return config, nil
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "[newLogger] bad --log-level %q", flagLogLevel)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "goc",
		Level:           level,
	}), nil
}
