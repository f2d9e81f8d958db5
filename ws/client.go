package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var (
	pongWait     = 10 * time.Second
	pingInterval = (pongWait * 9) / 10
)

var errServerDisconnect = errors.New("server closed the connection")

type Client struct {
	ID         string
	connection *websocket.Conn
	manager    *Manager
	egress     chan Event
	err        chan error
	done       chan struct{}
}

func NewClient(conn *websocket.Conn, manager *Manager) *Client {
	return &Client{
		ID:         uuid.NewString(),
		connection: conn,
		manager:    manager,
		egress:     make(chan Event),
		err:        make(chan error),
		done:       make(chan struct{}),
	}
}

// Reads incoming events from the client's websocket connection. Handler
// errors are emitted back to this connection only; they never close it.
func (c *Client) readMessages(ctx context.Context) {
	c.connection.SetReadLimit(512)

	if err := c.connection.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.handleError(err)
		return
	}

	c.connection.SetPongHandler(c.pongHandler)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			_, payload, err := c.connection.ReadMessage()

			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
					log.Printf("error reading message: %v", err)
				}
				c.handleError(err)
				return
			}

			var evt Event

			if err := json.Unmarshal(payload, &evt); err != nil {
				c.emitError("cannot unmarshal event json")
				continue
			}

			if err := c.manager.routeEvent(evt, c); err != nil {
				log.Printf("error handling %v event: %v", evt.Type, err)
				c.emitError(err.Error())
			}
		}
	}
}

// Writes events pushed to the client's egress channel and keeps the
// connection alive with pings.
func (c *Client) writeMessages(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)

	defer func() {
		ticker.Stop()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case message, ok := <-c.egress:
			if !ok {
				c.handleError(errors.New("client egress channel unexpectedly closed"))
				return
			}

			if message.Type == eventDisconnect {
				c.connection.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				c.handleError(errServerDisconnect)
				return
			}

			data, err := json.Marshal(message)

			if err != nil {
				c.handleError(err)
				return
			}

			if err := c.connection.WriteMessage(websocket.TextMessage, data); err != nil {
				c.handleError(err)
				return
			}
		case <-ticker.C:
			if err := c.connection.WriteMessage(websocket.PingMessage, []byte("")); err != nil {
				c.handleError(err)
				return
			}
		}
	}
}

// Sets a new read deadline when a pong is received for a ping message.
func (c *Client) pongHandler(pongMsg string) error {
	return c.connection.SetReadDeadline(time.Now().Add(pongWait))
}

// Pushes an error to the client error channel, which ServeWS consumes to
// tear the connection down. Gives up once the client is done so pushers
// can't block forever.
func (c *Client) handleError(e error) {
	select {
	case c.err <- e:
	case <-c.done:
	}
}

func (c *Client) Err() chan error {
	return c.err
}

// Creates an event and pushes it to the client's egress.
func (c *Client) PushEventToEgress(evtType string, payload any) error {
	evt, err := NewEvent(evtType, payload)

	if err != nil {
		return err
	}

	c.PushToEgress(evt)

	return nil
}

// Pushes an event to the egress to be delivered over the websocket
// connection.
func (c *Client) PushToEgress(evt Event) {
	select {
	case c.egress <- evt:
	case <-c.done:
	}
}

// Marshals an error event and pushes it to this connection only.
func (c *Client) emitError(message string) {
	evt, err := NewErrorEvent(message)

	if err != nil {
		c.handleError(err)
		return
	}

	c.PushToEgress(evt)
}

// ForceDisconnect asks the write pump to close the connection after
// everything already queued has been delivered.
func (c *Client) ForceDisconnect() {
	c.PushToEgress(Event{Type: eventDisconnect})
}
