// Package realtime pushes refresh signals to project dashboards over websockets.
package realtime

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/volunteerhub-dev/volunteerhub/internal/log"
	"github.com/volunteerhub-dev/volunteerhub/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

type Message struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	ProjectID string `json:"project_id"`
}

// client serializes writes; a websocket connection allows one writer at a time.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(msg)
}

// Hub tracks open dashboard connections per project.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]map[*client]bool
	upgrader websocket.Upgrader
}

func NewHub(allowedOrigins []string) *Hub {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &Hub{
		clients: make(map[string]map[*client]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
		},
	}
}

// Clients returns the number of open connections for a project.
func (h *Hub) Clients(projectID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[projectID])
}

// ProjectChanged tells every dashboard watching projectID to reload.
func (h *Hub) ProjectChanged(projectID string) {
	h.mu.RLock()
	clients, exists := h.clients[projectID]
	if !exists || len(clients) == 0 {
		h.mu.RUnlock()
		return
	}

	// Copy so the lock is not held while writing.
	targets := make([]*client, 0, len(clients))
	for c := range clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	logger := log.WithProjectID(projectID)
	for _, c := range targets {
		err := c.send(Message{
			Type:      "refresh",
			Message:   "Applications updated",
			ProjectID: projectID,
		})

		if err != nil {
			logger.Warn().Err(err).Msg("Failed to broadcast refresh to client")
			h.remove(projectID, c)
		}
	}
}

func (h *Hub) add(projectID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[projectID] == nil {
		h.clients[projectID] = make(map[*client]bool)
	}
	h.clients[projectID][c] = true
	metrics.RealtimeClients.Inc()
}

func (h *Hub) remove(projectID string, c *client) {
	h.mu.Lock()
	if clients, exists := h.clients[projectID]; exists {
		if clients[c] {
			delete(clients, c)
			metrics.RealtimeClients.Dec()
		}
		if len(clients) == 0 {
			delete(h.clients, projectID)
		}
	}
	h.mu.Unlock()
	c.conn.Close()
}

// Serve upgrades the request and holds the connection until the client leaves.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, projectID string) {
	logger := log.WithProjectID(projectID)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Warn().Err(err).Msg("Failed to set initial read deadline")
		conn.Close()
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	c := &client{conn: conn}
	h.add(projectID, c)
	defer func() {
		h.remove(projectID, c)
		logger.Debug().Msg("WebSocket connection closed")
	}()

	if err := c.send(Message{Type: "connected", Message: "WebSocket connection established", ProjectID: projectID}); err != nil {
		logger.Warn().Err(err).Msg("Failed to send welcome message")
		return
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn().Err(err).Msg("WebSocket error")
			}
			return
		}
	}
}
