package ws

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
)

// sendBuffer bounds how many undelivered events a listener may accumulate
// before it is considered unresponsive and dropped.
const sendBuffer = 16

// Client is one registered listener connection. Events flow through a
// buffered send queue drained by a dedicated writer goroutine, so one slow
// socket cannot stall a broadcast to the others.
type Client struct {
	ID   uuid.UUID
	hub  *Hub
	conn *websocket.Conn
	send chan domain.Event
	once sync.Once
	log  zerolog.Logger
}

func newClient(hub *Hub, conn *websocket.Conn, log zerolog.Logger) *Client {
	id := uuid.New()
	return &Client{
		ID:   id,
		hub:  hub,
		conn: conn,
		send: make(chan domain.Event, sendBuffer),
		log:  log.With().Stringer("connection_id", id).Logger(),
	}
}

// Serve registers the upgraded connection with the hub and starts its
// read and write pumps. It returns immediately.
func Serve(hub *Hub, conn *websocket.Conn, log zerolog.Logger) *Client {
	c := newClient(hub, conn, log)
	hub.Register(c)
	go c.writePump()
	go c.readPump()
	return c
}

// enqueue hands an event to the writer goroutine without blocking. It
// reports false when the queue is full or already closed, in which case the
// caller drops this listener.
func (c *Client) enqueue(event domain.Event) (ok bool) {
	defer func() {
		// send on a closed channel: the client raced its own teardown
		if recover() != nil {
			ok = false
		}
	}()
	select {
	case c.send <- event:
		return true
	default:
		return false
	}
}

// close shuts the send queue exactly once, ending the write pump.
func (c *Client) close() {
	c.once.Do(func() { close(c.send) })
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for event := range c.send {
		if err := c.conn.WriteJSON(event); err != nil {
			c.log.Warn().Err(err).Msg("websocket write failed")
			c.hub.Unregister(c)
			return
		}
	}
}

// readPump drains inbound frames. Client messages carry no command protocol:
// well-formed JSON is logged and otherwise ignored. A read error means the
// peer went away, which tears the connection down.
func (c *Client) readPump() {
	defer c.hub.Unregister(c)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg map[string]any
		if err := json.Unmarshal(data, &msg); err != nil {
			c.log.Debug().Err(err).Msg("ignoring malformed client message")
			continue
		}
		c.log.Debug().Interface("message", msg).Msg("client message received")
	}
}
