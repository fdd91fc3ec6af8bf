// Package live pushes selection changes to a user's open tabs over
// WebSocket. Fan-out is per identity only; there is no cross-user sync.
package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"

	"worldmark/internal/domain"
)

const broadcastTimeout = 5 * time.Second

// Hub tracks active WebSocket connections per user and tab.
type Hub struct {
	mu     sync.RWMutex
	active map[string]map[string]*websocket.Conn
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		active: make(map[string]map[string]*websocket.Conn),
	}
}

// Active returns the connection for a user/tab, or nil.
func (h *Hub) Active(userID, sessionID string) *websocket.Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if sessions, ok := h.active[userID]; ok {
		return sessions[sessionID]
	}
	return nil
}

// Register adds a connection for a user/tab. A tab reconnecting replaces
// and closes its previous connection.
func (h *Hub) Register(userID, sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.active[userID]; !exists {
		h.active[userID] = make(map[string]*websocket.Conn)
	}

	if existing, exists := h.active[userID][sessionID]; exists && existing != conn {
		_ = existing.Close(websocket.StatusNormalClosure, "tab reconnected")
	}

	h.active[userID][sessionID] = conn
	slog.Info("Live tab registered", "user_id", userID, "session_id", sessionID)
}

// Unregister removes a connection for a user/tab if it is still current.
func (h *Hub) Unregister(userID, sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sessions, ok := h.active[userID]; ok {
		if current, exists := sessions[sessionID]; exists && current == conn {
			delete(sessions, sessionID)
			if len(sessions) == 0 {
				delete(h.active, userID)
			}
			slog.Info("Live tab unregistered", "user_id", userID, "session_id", sessionID)
		}
	}
}

// CloseUser forcefully closes every connection a user has open.
func (h *Hub) CloseUser(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessions, ok := h.active[userID]
	if !ok {
		return
	}
	for sid, conn := range sessions {
		_ = conn.Close(websocket.StatusNormalClosure, "identity expired")
		slog.Info("Live tab closed", "user_id", userID, "session_id", sid)
	}
	delete(h.active, userID)
}

// selectionEvent is the wire format pushed to tabs.
type selectionEvent struct {
	Type       string               `json:"type"`
	Selections domain.SelectionList `json:"selections"`
}

func encodeSelectionEvent(list domain.SelectionList) ([]byte, error) {
	return json.Marshal(selectionEvent{Type: "selections", Selections: list})
}

// Broadcast sends the user's updated list to every open tab. Best effort:
// a failed send closes that connection and never fails the mutation that
// triggered it.
func (h *Hub) Broadcast(userID string, list domain.SelectionList) {
	payload, err := encodeSelectionEvent(list)
	if err != nil {
		slog.Error("Failed to encode selection event", "error", err, "user_id", userID)
		return
	}

	h.mu.RLock()
	conns := make(map[string]*websocket.Conn, len(h.active[userID]))
	for sid, conn := range h.active[userID] {
		conns[sid] = conn
	}
	h.mu.RUnlock()

	for sid, conn := range conns {
		ctx, cancel := context.WithTimeout(context.Background(), broadcastTimeout)
		err := conn.Write(ctx, websocket.MessageText, payload)
		cancel()
		if err != nil {
			slog.Debug("Dropping live tab after failed write", "user_id", userID, "session_id", sid, "error", err)
			_ = conn.Close(websocket.StatusAbnormalClosure, "write failed")
			h.Unregister(userID, sid, conn)
		}
	}
}
