package notify

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	defaultRecentSize = 50
	writeWait         = 10 * time.Second
	broadcastBuffer   = 64
)

// Hub pushes notifications to connected browsers over websockets and keeps
// the most recent ones for clients that poll.
type Hub struct {
	upgrader  websocket.Upgrader
	clients   map[*websocket.Conn]bool
	clientsMu sync.Mutex

	recent    []Notification
	recentMu  sync.RWMutex
	maxRecent int

	broadcast chan Notification
	logger    *slog.Logger
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithAllowedOrigins restricts websocket upgrades to the given origins.
// Without it every origin is accepted.
func WithAllowedOrigins(origins ...string) HubOption {
	return func(h *Hub) {
		allowed := make(map[string]bool, len(origins))
		for _, o := range origins {
			allowed[o] = true
		}
		h.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || allowed[origin]
		}
	}
}

// WithRecentSize bounds how many notifications Recent returns.
func WithRecentSize(n int) HubOption {
	return func(h *Hub) {
		if n > 0 {
			h.maxRecent = n
		}
	}
}

// WithHubLogger sets the logger used for connection errors.
func WithHubLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

// NewHub creates a Hub. Call Run to start delivering to websocket clients.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients:   make(map[*websocket.Conn]bool),
		maxRecent: defaultRecentSize,
		broadcast: make(chan Notification, broadcastBuffer),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Notify records n and queues it for websocket delivery. When the delivery
// queue is full the push is dropped; the notification stays in Recent.
func (h *Hub) Notify(_ context.Context, n Notification) {
	h.recentMu.Lock()
	h.recent = append(h.recent, n)
	if len(h.recent) > h.maxRecent {
		h.recent = h.recent[len(h.recent)-h.maxRecent:]
	}
	h.recentMu.Unlock()

	select {
	case h.broadcast <- n:
	default:
		h.logger.Warn("Notification push queue full, dropping", slog.String("notification_id", n.ID))
	}
}

// Recent returns the retained notifications, newest first.
func (h *Hub) Recent() []Notification {
	h.recentMu.RLock()
	defer h.recentMu.RUnlock()
	out := make([]Notification, len(h.recent))
	for i, n := range h.recent {
		out[len(h.recent)-1-i] = n
	}
	return out
}

// Clients returns the number of connected websocket clients.
func (h *Hub) Clients() int {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	return len(h.clients)
}

// Run delivers queued notifications until ctx is cancelled, then closes all clients.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.clientsMu.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.clientsMu.Unlock()
			return
		case n := <-h.broadcast:
			h.deliver(n)
		}
	}
}

func (h *Hub) deliver(n Notification) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(n); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ServeHTTP upgrades the request to a websocket and keeps it registered until
// the client goes away. Messages sent by the client are ignored.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	h.clientsMu.Lock()
	h.clients[conn] = true
	h.clientsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.clientsMu.Lock()
			if h.clients[conn] {
				delete(h.clients, conn)
				conn.Close()
			}
			h.clientsMu.Unlock()
			return
		}
	}
}
