package main

import "github.com/spf13/cobra"

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open a graphical window",
	Long: `Draw the simulation in a window, one square per cell.

Controls:
  Space    - Pause / resume
  Enter    - Resume
  N        - Single step
  R        - Reset with the same seed
  S        - Reseed from the clock
  Q/Esc    - Quit

The window is only available in builds made with -tags ebiten.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		return runWindow(config, flagScale, logger)
	},
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 16, "Pixels per cell")
}
