package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-pacman/internal/game"
)

// ServerConfig holds configuration for the WebSocket snapshot server.
type ServerConfig struct {
	// Addr is the host:port to listen on (e.g., ":8080").
	Addr string

	// TickRate is the raw simulation ticks per second.
	TickRate int

	// Seed seeds the shared game; 0 derives one from the clock.
	Seed uint64

	// Lives is the starting lives for the shared game.
	Lives int

	// UpdatePeriod is the ticks-per-step divisor; 0 keeps the simulation
	// default.
	UpdatePeriod int
}

// command is the JSON message clients send to steer the game.
type command struct {
	Type string `json:"type"` // "move", "target", "pause", "play", "restart"
	Dir  string `json:"dir,omitempty"`
	Row  int8   `json:"row,omitempty"`
	Col  int8   `json:"col,omitempty"`
}

// Server runs one shared game and broadcasts its binary snapshot to every
// connected client after each simulation step.
type Server struct {
	config   ServerConfig
	upgrader websocket.Upgrader
	logger   *log.Logger

	mu   sync.Mutex // guards the game; Step and commands serialize here
	game *game.Game

	clients       map[*Client]bool
	clientsMutex  sync.RWMutex
	register      chan *Client
	unregister    chan *Client
	clientCounter int

	httpServer *http.Server
}

// NewServer creates a snapshot server with a fresh game.
func NewServer(cfg ServerConfig) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 24
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := game.New(game.Options{
		Seed:         seed,
		Lives:        uint8(cfg.Lives),
		UpdatePeriod: uint8(cfg.UpdatePeriod),
	})
	g.Play()

	return &Server{
		config: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "pacman-web",
		}),
		game:       g,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// handleWebSocket upgrades HTTP requests to WebSocket connections.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "error", err)
		return
	}

	s.clientsMutex.Lock()
	s.clientCounter++
	client := newClient(conn, fmt.Sprintf("client_%d", s.clientCounter))
	s.clients[client] = true
	s.clientsMutex.Unlock()

	s.register <- client

	go client.writePump()
	go client.readPump(s)
}

// handleCommand applies one client message to the shared game.
func (s *Server) handleCommand(c *Client, message []byte) {
	var cmd command
	if err := json.Unmarshal(message, &cmd); err != nil {
		s.logger.Warn("bad command", "client", c.id, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch cmd.Type {
	case "move":
		if dir, ok := parseDirection(cmd.Dir); ok {
			s.game.MovePlayer(dir)
		}
	case "target":
		if err := s.game.SetPlayerTarget(cmd.Row, cmd.Col); err != nil {
			s.logger.Debug("unreachable target",
				"client", c.id, "row", cmd.Row, "col", cmd.Col)
		}
	case "pause":
		s.game.Pause()
	case "play":
		s.game.Play()
	case "restart":
		if s.game.Lives() == 0 {
			g := game.New(game.Options{
				Seed:         uint64(time.Now().UnixNano()),
				Lives:        uint8(s.config.Lives),
				UpdatePeriod: uint8(s.config.UpdatePeriod),
			})
			g.Play()
			s.game = g
			s.logger.Info("game restarted", "by", c.id)
		}
	default:
		s.logger.Warn("unknown command", "client", c.id, "type", cmd.Type)
	}
}

func parseDirection(name string) (game.Direction, bool) {
	switch name {
	case "up":
		return game.DirUp, true
	case "left":
		return game.DirLeft, true
	case "down":
		return game.DirDown, true
	case "right":
		return game.DirRight, true
	}
	return game.DirStay, false
}

// stepLoop drives the shared game at the configured tick rate and
// broadcasts the snapshot after every tick.
func (s *Server) stepLoop(ctx context.Context) {
	interval := time.Second / time.Duration(s.config.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			events := s.game.Step()
			snapshot := s.game.Encode()
			s.mu.Unlock()

			for _, ev := range events {
				s.logger.Debug("event", "kind", ev.Kind.String(),
					"tick", ev.Tick, "prev", ev.Prev, "curr", ev.Curr)
			}

			s.broadcast(snapshot)
		}
	}
}

// broadcast queues a snapshot for every connected client. Clients whose
// buffers are full are dropped.
func (s *Server) broadcast(snapshot []byte) {
	s.clientsMutex.RLock()
	clients := make([]*Client, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}
	s.clientsMutex.RUnlock()

	for _, client := range clients {
		select {
		case client.send <- snapshot:
		default:
			s.logger.Warn("send buffer full, dropping client", "client", client.id)
			s.unregister <- client
		}
	}
}

// registryLoop serializes client registration and unregistration.
func (s *Server) registryLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-s.register:
			s.logger.Info("client connected", "client", client.id,
				"remote", client.conn.RemoteAddr().String())
		case client := <-s.unregister:
			s.dropClient(client)
		}
	}
}

// dropClient removes a client from the registry. The send channel is never
// closed: a broadcast may hold a stale handle from before the removal, and
// the write pump shuts down through the done channel instead.
func (s *Server) dropClient(client *Client) {
	s.clientsMutex.Lock()
	_, ok := s.clients[client]
	if ok {
		delete(s.clients, client)
	}
	s.clientsMutex.Unlock()

	if ok {
		s.logger.Info("client disconnected", "client", client.id)
	}
}

// ListenAndServe starts the server and blocks until the context is
// cancelled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.registryLoop(ctx)
	go s.stepLoop(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)

	s.httpServer = &http.Server{
		Addr:              s.config.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("starting snapshot server",
		"addr", s.config.Addr, "tick_rate", s.config.TickRate)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
