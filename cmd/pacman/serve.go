package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game; scores land on the server's shared
leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pacman/host_key

Examples:
  pacman serve                           # Listen on :2222 with auto-generated key
  pacman serve --ssh :2323               # Listen on port 2323
  pacman serve --host-key ./my_host_key  # Use specific host key
  pacman serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	addr := flagSSHAddr
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", cfg.SSH.Host, cfg.SSH.Port)
	}
	hostKey := flagHostKey
	if hostKey == "" {
		hostKey = cfg.SSH.KeyPath
	}
	settings := config.SettingsForPreset(cfg.Difficulty)

	serverCfg := tui.SSHServerConfig{
		Address:      addr,
		HostKeyPath:  hostKey,
		DBPath:       cfg.Storage.DBPath,
		TickRate:     cfg.Game.TickRate,
		Lives:        settings.Lives,
		UpdatePeriod: settings.UpdatePeriod,
		IdleTimeout:  time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting SSH server on %s\n", serverCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 2222")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
