package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-dialer/internal/dialer"
	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/models"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Clients only send control frames.
	maxMessageSize = 512

	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// wsClient sits between one websocket connection and the hub.
type wsClient struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub fans dialer snapshots out to every connected websocket client.
// A new client first receives the current snapshot.
type Hub struct {
	dialer dialer.Dialer

	clients    map[*wsClient]struct{}
	register   chan *wsClient
	unregister chan *wsClient
	done       chan struct{}

	logger *logger.Logger
}

func NewHub(d dialer.Dialer, log *logger.Logger) *Hub {
	return &Hub{
		dialer:     d,
		clients:    make(map[*wsClient]struct{}),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		done:       make(chan struct{}),
		logger:     log.WithComponent("ws"),
	}
}

// Run broadcasts snapshots until ctx is canceled or the dialer closes its
// feed. All connected clients are dropped on return.
func (h *Hub) Run(ctx context.Context) error {
	feed, cancel := h.dialer.Subscribe()
	defer cancel()
	defer close(h.done)
	defer func() {
		for c := range h.clients {
			h.drop(c)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-h.register:
			h.clients[c] = struct{}{}
			if msg, err := encodeSnapshot(h.dialer.Snapshot()); err == nil {
				c.send <- msg
			}
			h.logger.Debug().Int("clients", len(h.clients)).Msg("websocket client registered")
		case c := <-h.unregister:
			h.drop(c)
		case snap, ok := <-feed:
			if !ok {
				return nil
			}
			msg, err := encodeSnapshot(snap)
			if err != nil {
				h.logger.Err(err).Msg("encoding snapshot")
				continue
			}
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					h.logger.Warn().Msg("websocket client too slow, dropping")
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *wsClient) {
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func encodeSnapshot(snap models.DialerSnapshot) ([]byte, error) {
	return json.Marshal(newStatusResponse(snap))
}

func (h *Handler) serveWs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &wsClient{hub: h.hub, conn: conn, send: make(chan []byte, sendBufferSize)}
	select {
	case h.hub.register <- c:
	case <-h.hub.done:
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}

	go c.writePump()
	go c.readPump(log)
}

// readPump only consumes control frames and detects a closed peer.
func (c *wsClient) readPump(log *logger.Logger) {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Err(err).Msg("websocket read")
			}
			return
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
