package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the WebSocket snapshot server",
	Long: `Start an HTTP server with a /ws WebSocket endpoint. One shared game
runs on the server; after each simulation tick its binary snapshot is
broadcast to every connected client, and clients steer the game with JSON
commands:

  {"type":"move","dir":"left"}
  {"type":"target","row":23,"col":9}
  {"type":"pause"} {"type":"play"} {"type":"restart"}

Examples:
  pacman web
  pacman web --addr :9000 --seed 42`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "Listen address (host:port, default from config)")
}

func runWeb(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	addr := flagWebAddr
	if addr == "" {
		addr = cfg.Web.Addr
	}
	settings := config.SettingsForPreset(cfg.Difficulty)

	server := web.NewServer(web.ServerConfig{
		Addr:         addr,
		TickRate:     cfg.Game.TickRate,
		Seed:         cfg.Game.Seed,
		Lives:        settings.Lives,
		UpdatePeriod: settings.UpdatePeriod,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting snapshot server on %s\n", addr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
