// Package web serves the simulation over WebSockets: every simulation step
// the encoded binary snapshot is broadcast to all connected clients, and
// clients steer the shared game with small JSON commands.
package web

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	// WebSocket heartbeat settings to detect disconnected clients
	pingInterval = 10 * time.Second // Frequency of sending ping messages
	pongWait     = 60 * time.Second // Time to wait for a pong before dropping the client
	writeWait    = 10 * time.Second // Deadline for a single outgoing write

	sendBufferSize = 64 // Snapshots queued per client before it is dropped
)

// Client represents a single connected WebSocket client.
type Client struct {
	conn *websocket.Conn
	send chan []byte   // Outgoing snapshots for this client
	done chan struct{} // Closed when the read pump exits
	id   string
}

func newClient(conn *websocket.Conn, id string) *Client {
	return &Client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
		id:   id,
	}
}

// readPump reads command messages until the connection drops, then
// unregisters the client.
func (c *Client) readPump(s *Server) {
	defer func() {
		s.unregister <- c
		close(c.done)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("unexpected close", "client", c.id, "error", err)
			}
			return
		}
		s.handleCommand(c, message)
	}
}

// writePump pushes queued snapshots to the connection and keeps the
// heartbeat alive.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
