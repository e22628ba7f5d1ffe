package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/roverops/marsmission/mission/mars"
	"github.com/roverops/marsmission/mission/service"
)

// Timing constants for the client pumps. pingPeriod must stay below
// pongWait or healthy connections get dropped.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict origins once the deployment host is known
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message is the wire format pushed to mission watchers.
type Message struct {
	SessionID    string                `json:"session_id"`
	MissionState *service.MissionState `json:"mission_state,omitempty"`
	Event        string                `json:"event,omitempty"`
	Data         interface{}           `json:"data,omitempty"`
}

// Client is one WebSocket connection watching a single session.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
}

// Hub routes mission state updates to the clients watching each session.
// All map mutation happens on the Run goroutine or behind the broadcast
// fast path, which shares it.
type Hub struct {
	// sessions maps a session ID to its connected watchers.
	sessions map[string]map[*Client]bool

	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client
}

// NewHub creates an empty hub. Call Run on its own goroutine before
// serving connections.
func NewHub() *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run drives the hub's event loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// ServeWS upgrades an HTTP request and attaches the connection to the
// given session. The caller validates the session first.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, sessionID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, mars.WebSocketBufferSize),
		sessionID: sessionID,
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// BroadcastToSession pushes a plateau snapshot to everyone watching the
// session. Slow watchers whose send buffer is full get disconnected
// rather than stalling the rest.
func (h *Hub) BroadcastToSession(sessionID string, state *service.MissionState) {
	message := &Message{
		SessionID:    sessionID,
		MissionState: state,
		Event:        "state_update",
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("websocket: marshal state update: %v", err)
		return
	}

	for client := range h.sessions[sessionID] {
		select {
		case client.send <- data:
		default:
			h.unregisterClient(client)
		}
	}
}

// BroadcastEvent queues a custom event for the session's watchers.
func (h *Hub) BroadcastEvent(sessionID string, event string, data interface{}) {
	h.broadcast <- &Message{
		SessionID: sessionID,
		Event:     event,
		Data:      data,
	}
}

func (h *Hub) registerClient(client *Client) {
	if h.sessions[client.sessionID] == nil {
		h.sessions[client.sessionID] = make(map[*Client]bool)
	}
	h.sessions[client.sessionID][client] = true

	log.Printf("websocket: session %s gained a watcher (%d connected)",
		client.sessionID, len(h.sessions[client.sessionID]))
}

func (h *Hub) unregisterClient(client *Client) {
	clients, ok := h.sessions[client.sessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.send)

	// Drop the session entry once its last watcher leaves
	if len(clients) == 0 {
		delete(h.sessions, client.sessionID)
	}

	log.Printf("websocket: session %s lost a watcher (%d remaining)",
		client.sessionID, len(clients))
}

func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("websocket: marshal event: %v", err)
		return
	}

	for client := range h.sessions[message.SessionID] {
		select {
		case client.send <- data:
		default:
			h.unregisterClient(client)
		}
	}
}

// readPump drains the connection. Incoming frames are discarded; the read
// loop exists to answer pings and notice disconnects.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket read: %v", err)
			}
			return
		}
	}
}

// writePump flushes queued updates to the connection and keeps it alive
// with pings. Queued states are coalesced into one frame, newline
// separated, so a lagging watcher catches up in a single write.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			for i := len(c.send); i > 0; i-- {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
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
