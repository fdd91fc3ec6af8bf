package live

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/coder/websocket"

	"worldmark/internal/identity"
	"worldmark/internal/selection"
)

// WebSocketHandler upgrades /ws/selections connections and keeps them in
// the hub until the tab goes away.
type WebSocketHandler struct {
	hub           *Hub
	selections    *selection.Store
	allowedOrigin string
	isDev         bool
}

// NewWebSocketHandler creates a new WebSocket handler.
func NewWebSocketHandler(hub *Hub, selections *selection.Store, allowedOrigin string, isDev bool) *WebSocketHandler {
	return &WebSocketHandler{
		hub:           hub,
		selections:    selections,
		allowedOrigin: allowedOrigin,
		isDev:         isDev,
	}
}

// ServeHTTP implements http.Handler for the WebSocket upgrade.
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	sessionID := identity.SessionIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept WebSocket", "error", err, "user_id", userID)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "tab closed"); closeErr != nil {
			slog.Debug("Failed to close websocket", "error", closeErr, "user_id", userID)
		}
	}()

	h.hub.Register(userID, sessionID, ws)
	defer h.hub.Unregister(userID, sessionID, ws)

	// Send the current list to just this connection so a fresh tab
	// starts in sync without re-notifying the user's other tabs.
	if list, err := h.selections.Load(r.Context(), userID); err == nil {
		if payload, encErr := encodeSelectionEvent(list); encErr == nil {
			writeCtx, cancel := context.WithTimeout(r.Context(), broadcastTimeout)
			if writeErr := ws.Write(writeCtx, websocket.MessageText, payload); writeErr != nil {
				slog.Debug("Failed to send initial state", "error", writeErr, "user_id", userID)
			}
			cancel()
		}
	}

	// The client never sends application data; reading just tracks
	// connection liveness and control frames.
	ctx := r.Context()
	for {
		if _, _, err := ws.Read(ctx); err != nil {
			return
		}
	}
}

func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	if h.isDev {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return h.allowedOrigin == "" || strings.HasPrefix(origin, h.allowedOrigin)
}
