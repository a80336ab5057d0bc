package events

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Event is a real-time notification pushed to connected dashboards.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// connection represents one subscribed dashboard client.
type connection struct {
	id       string
	tenantID string
	conn     *websocket.Conn
	send     chan []byte
}

// Hub fans events out to subscribers. Subscribers only receive events for
// their own tenant; tenant-less subscribers receive everything.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*connection
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]*connection)}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c.id] = c
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[c.id]; ok {
		delete(h.conns, c.id)
		close(c.send)
	}
}

// Publish broadcasts an event to the tenant's subscribers. Best-effort: slow
// consumers are skipped rather than blocking the publisher.
func (h *Hub) Publish(tenantID string, eventType string, payload any) {
	data, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("events: marshal failed type=%s: %v", eventType, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.conns {
		if c.tenantID != "" && c.tenantID != tenantID {
			continue
		}
		select {
		case c.send <- data:
		default:
		}
	}
}

// ServeWS runs read and write loops for an upgraded connection until the
// client goes away.
func (h *Hub) ServeWS(conn *websocket.Conn, tenantID string) {
	c := &connection{
		id:       uuid.NewString(),
		tenantID: tenantID,
		conn:     conn,
		send:     make(chan []byte, 32),
	}
	h.register(c)

	go h.writeLoop(c)
	h.readLoop(c)
}

func (h *Hub) readLoop(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		// The feed is one-way; inbound frames are drained only to detect close.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("events: read error: %v", err)
			}
			return
		}
	}
}

func (h *Hub) writeLoop(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
