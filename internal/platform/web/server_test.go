package web

import (
	"testing"
)

func TestNewServerAppliesUpdatePeriod(t *testing.T) {
	s := NewServer(ServerConfig{Lives: 2, UpdatePeriod: 10})

	if got := s.game.UpdatePeriod(); got != 10 {
		t.Errorf("update period = %d, want 10", got)
	}
	if got := s.game.Lives(); got != 2 {
		t.Errorf("lives = %d, want 2", got)
	}
}

func TestDropClientLeavesSendOpen(t *testing.T) {
	s := NewServer(ServerConfig{})
	c := newClient(nil, "client_1")
	s.clients[c] = true

	s.dropClient(c)

	if len(s.clients) != 0 {
		t.Fatalf("clients = %d, want 0", len(s.clients))
	}

	// A broadcast that copied the client list before the drop still holds
	// this handle; the send must land in the buffer, not panic.
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("send after drop panicked: %v", r)
		}
	}()
	c.send <- []byte{0}
}

func TestDropClientTwiceIsHarmless(t *testing.T) {
	s := NewServer(ServerConfig{})
	c := newClient(nil, "client_1")
	s.clients[c] = true

	s.dropClient(c)
	s.dropClient(c)

	if len(s.clients) != 0 {
		t.Errorf("clients = %d, want 0", len(s.clients))
	}
}

func TestBroadcastSkipsDroppedClient(t *testing.T) {
	s := NewServer(ServerConfig{})
	kept := newClient(nil, "client_1")
	dropped := newClient(nil, "client_2")
	s.clients[kept] = true
	s.clients[dropped] = true

	s.dropClient(dropped)
	s.broadcast([]byte{1, 2, 3})

	select {
	case got := <-kept.send:
		if len(got) != 3 {
			t.Errorf("snapshot length = %d, want 3", len(got))
		}
	default:
		t.Error("kept client received no snapshot")
	}

	select {
	case <-dropped.send:
		t.Error("dropped client received a snapshot")
	default:
	}
}
