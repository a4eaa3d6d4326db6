package notification

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

// connection represents a single connected agent
type connection struct {
	agentID int64
	conn    *websocket.Conn
	send    chan []byte
}

// Hub pushes freshly created notifications to connected agents.
type Hub struct {
	mu          sync.RWMutex
	connections map[int64]*connection // agentID -> connection
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*connection),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c.agentID] = c
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.connections[c.agentID]; ok && existing == c {
		delete(h.connections, c.agentID)
		close(c.send)
	}
}

// Push delivers a notification to the agent if they are connected. Offline
// agents pick it up from the inbox endpoints.
func (h *Hub) Push(agentID int64, n *Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if c, ok := h.connections[agentID]; ok {
		select {
		case c.send <- data:
		default:
			// Client too slow — skip
		}
	}
}

// ServeWS registers a new connection and starts read/write loops
func (h *Hub) ServeWS(conn *websocket.Conn, agentID int64) {
	c := &connection{
		agentID: agentID,
		conn:    conn,
		send:    make(chan []byte, 64),
	}
	h.register(c)

	go c.writeLoop()
	go c.readLoop(h)
}

func (c *connection) writeLoop() {
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

func (c *connection) readLoop(h *Hub) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// The notification stream is one-way; drain and discard client frames.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
