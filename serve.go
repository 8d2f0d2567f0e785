package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sheikhrachel/game-of-colors/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that shows the simulation to every connection.

Each SSH connection gets its own simulation. Unless --width and --height are
given the grid is sized to the connecting terminal, and unless --seed is given
every session starts from its own random seed.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.goc/host_key

Examples:
  goc serve                     # Listen on :23235 with auto-generated key
  goc serve --ssh :2222         # Listen on port 2222
  goc serve --seed 7 --rate 10  # Same start for everyone, faster ticks

Users can connect with:
  ssh localhost -p 23235`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	sim, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("width") || !cmd.Flags().Changed("height") {
		sim.Width, sim.Height = 0, 0
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Sim:         sim,
	}
	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("goc-ssh"))
	if err != nil {
		return err
	}

	fmt.Printf("Serving on %s, connect with: ssh -p <port> <host>\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}
