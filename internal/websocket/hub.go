// Package websocket pushes refresh lifecycle events to connected
// browser clients. The hub fans one JSON message out to every client;
// slow clients are dropped rather than allowed to block the broadcast.
package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/Johan-Arul/skylark-ai-agent/internal/infrastructure"
	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// Message type constants
const (
	TypeConnection       = "connection"
	TypeRefreshStarted   = "refresh:started"
	TypeRefreshCompleted = "refresh:completed"
	TypeRefreshFailed    = "refresh:failed"
)

// Hub maintains the set of active clients and broadcasts messages to them
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Outbound messages to all clients
	broadcast chan []byte

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	mu     sync.RWMutex
	logger *slog.Logger

	quit    chan struct{}
	running bool
}

// NewHub creates a new Hub instance
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = infrastructure.GetLogger()
	}
	return &Hub{
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     logger.With(slog.String("component", "websocket.hub")),
		quit:       make(chan struct{}),
	}
}

// Start starts the hub's main loop
func (h *Hub) Start() {
	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		return
	}
	h.running = true
	h.mu.Unlock()

	go h.run()
}

// Shutdown stops the hub and disconnects all clients
func (h *Hub) Shutdown() {
	h.mu.Lock()
	if !h.running {
		h.mu.Unlock()
		return
	}
	h.running = false
	h.mu.Unlock()
	close(h.quit)
}

func (h *Hub) run() {
	for {
		select {
		case <-h.quit:
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			h.logger.Info("Hub shut down")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()

			h.logger.Info("Client registered",
				slog.Int("total_clients", count),
				slog.String("client_id", client.id),
				slog.String("remote_addr", client.remoteAddr))

			h.sendTo(client, h.envelope(TypeConnection, map[string]interface{}{
				"status":    "connected",
				"client_id": client.id,
			}))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				count := len(h.clients)
				h.mu.Unlock()
				h.logger.Info("Client unregistered",
					slog.Int("total_clients", count),
					slog.String("client_id", client.id),
					slog.Duration("connection_duration", time.Since(client.connectedAt)))
			} else {
				h.mu.Unlock()
			}

		case message := <-h.broadcast:
			var slow []*Client
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Buffer full; the client is too slow to keep
					slow = append(slow, client)
				}
			}
			h.mu.RUnlock()
			if len(slow) > 0 {
				h.mu.Lock()
				for _, client := range slow {
					if _, ok := h.clients[client]; ok {
						delete(h.clients, client)
						close(client.send)
						h.logger.Warn("Dropped slow client",
							slog.String("client_id", client.id))
					}
				}
				h.mu.Unlock()
			}
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a typed event to all connected clients
func (h *Hub) Broadcast(msgType string, data interface{}) {
	message := h.envelope(msgType, data)
	if message == nil {
		return
	}
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("Broadcast channel full, dropping message",
			slog.String("type", msgType))
	}
}

func (h *Hub) envelope(msgType string, data interface{}) []byte {
	message, err := json.Marshal(map[string]interface{}{
		"type":      msgType,
		"data":      data,
		"timestamp": time.Now().Format(time.RFC3339),
	})
	if err != nil {
		h.logger.Error("Failed to marshal message",
			slog.String("type", msgType),
			slog.String("error", err.Error()))
		return nil
	}
	return message
}

func (h *Hub) sendTo(client *Client, message []byte) {
	if message == nil {
		return
	}
	select {
	case client.send <- message:
	default:
		h.logger.Warn("Client buffer full",
			slog.String("client_id", client.id))
	}
}

// RefreshStarted implements the refresh notifier contract.
func (h *Hub) RefreshStarted(snapshotID string) {
	h.Broadcast(TypeRefreshStarted, map[string]interface{}{
		"snapshot_id": snapshotID,
	})
}

// RefreshCompleted implements the refresh notifier contract.
func (h *Hub) RefreshCompleted(snapshot *domain.Snapshot) {
	deals, workOrders := snapshot.Counts()
	h.Broadcast(TypeRefreshCompleted, map[string]interface{}{
		"snapshot_id": snapshot.ID,
		"deals":       deals,
		"work_orders": workOrders,
	})
}

// RefreshFailed implements the refresh notifier contract.
func (h *Hub) RefreshFailed(snapshotID string, err error) {
	h.Broadcast(TypeRefreshFailed, map[string]interface{}{
		"snapshot_id": snapshotID,
		"error":       err.Error(),
	})
}
