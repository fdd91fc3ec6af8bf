package live

import (
	"testing"

	"github.com/coder/websocket"
)

func TestHubRegister(t *testing.T) {
	hub := NewHub()
	conn := &websocket.Conn{}

	hub.Register("user-1", "tab-1", conn)

	if got := hub.Active("user-1", "tab-1"); got != conn {
		t.Errorf("Active = %v, want %v", got, conn)
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	conn := &websocket.Conn{}

	hub.Register("user-1", "tab-1", conn)
	hub.Unregister("user-1", "tab-1", conn)

	if got := hub.Active("user-1", "tab-1"); got != nil {
		t.Errorf("Active = %v, want nil", got)
	}
}

func TestHubUnregisterKeepsOtherTabs(t *testing.T) {
	hub := NewHub()
	conn1 := &websocket.Conn{}
	conn2 := &websocket.Conn{}

	hub.Register("user-1", "tab-1", conn1)
	hub.Register("user-1", "tab-2", conn2)
	hub.Unregister("user-1", "tab-1", conn1)

	if got := hub.Active("user-1", "tab-2"); got != conn2 {
		t.Errorf("tab-2 lost its connection: %v", got)
	}
}

func TestHubUnregisterIgnoresStaleConn(t *testing.T) {
	hub := NewHub()
	current := &websocket.Conn{}
	stale := &websocket.Conn{}

	hub.Register("user-1", "tab-1", current)
	// A previous connection's deferred Unregister must not remove the
	// one that replaced it.
	hub.Unregister("user-1", "tab-1", stale)

	if got := hub.Active("user-1", "tab-1"); got != current {
		t.Errorf("stale unregister removed the live connection: %v", got)
	}
}

func TestHubUsersAreIsolated(t *testing.T) {
	hub := NewHub()
	conn := &websocket.Conn{}

	hub.Register("user-1", "tab-1", conn)

	if got := hub.Active("user-2", "tab-1"); got != nil {
		t.Errorf("user-2 sees user-1's connection: %v", got)
	}
}
