package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sheikhrachel/game-of-colors/driver"
	"github.com/sheikhrachel/game-of-colors/model"
	"github.com/sheikhrachel/game-of-colors/tui"
)

var (
	flagPlain       bool
	flagFit         bool
	flagAutoRestart bool
	flagMaxGen      int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch the simulation in the terminal",
	Long: `Run the simulation in the terminal.

Controls:
  Space    - Pause / resume
  N        - Single step while paused
  R        - Reset with the same seed
  S        - Reseed from the clock
  Q/Ctrl+C - Quit

With --plain the grid is redrawn line by line without the interactive view,
which also works when output is piped.

Examples:
  goc run
  goc run --fit
  goc run --plain --max-gen 200
  goc run --config ./colors.yaml --auto-restart`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the line-based renderer")
	runCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the grid to the terminal")
	runCmd.Flags().BoolVar(&flagAutoRestart, "auto-restart", false, "Reseed on extinction or stagnation")
	runCmd.Flags().IntVar(&flagMaxGen, "max-gen", 0, "Stop after this many generations (plain mode, 0 = unbounded)")
}

func runRun(cmd *cobra.Command, _ []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("auto-restart") {
		config.AutoRestart = flagAutoRestart
	}
	if cmd.Flags().Changed("max-gen") {
		config.MaxGenerations = flagMaxGen
	}

	if flagFit {
		// Get terminal size
		if cols, rows, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			config.Width, config.Height = tui.FitSize(cols, rows)
		}
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}

	if !flagPlain {
		// Log lines would tear the alternate screen
		d, newErr := driver.New(config)
		if newErr != nil {
			return newErr
		}
		return tui.Run(d)
	}

	d, err := driver.New(config, driver.WithLogger(logger))
	if err != nil {
		return err
	}
	return runPlain(d, logger)
}

// runPlain is the line-based game loop: clear, status, grid, until Ctrl+C
func runPlain(d *driver.Driver, logger *log.Logger) error {
	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	displayGameInfo(os.Stdout, d)
	attachPlainRenderer(os.Stdout, d)

	err := d.Run(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Println()
		logger.Info("shutting down gracefully")
		displayFinalStats(os.Stdout, d)
		return nil
	}
	if err == nil {
		displayFinalStats(os.Stdout, d)
	}
	return err
}

// attachPlainRenderer draws the current generation, then every committed one after it
func attachPlainRenderer(w io.Writer, d *driver.Driver) {
	renderer := tui.NewTerminalRenderer(w)
	draw := func(s model.Snapshot) {
		renderer.Clear()
		displayGameStatus(w, s, d.Stats())
		renderer.Display(s)
	}

	draw(d.Snapshot())
	d.OnRender(draw)
}
