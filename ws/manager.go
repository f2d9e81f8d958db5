package ws

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"golang.org/x/exp/slices"

	"github.com/pairplay/chess-relay/http_utils"
	"github.com/pairplay/chess-relay/util"
)

// Manager owns the websocket side of the relay: it upgrades connections,
// tracks clients, and routes incoming events to their handlers. Room state
// lives in the injected Registry.
type Manager struct {
	config     *util.Config
	registry   *Registry
	matchmaker *Matchmaker
	validate   *validator.Validate
	clients    map[string]*Client
	handlers   map[string]EventHandler
	upgrader   websocket.Upgrader
	sync.RWMutex
}

func NewManager(config *util.Config, registry *Registry) *Manager {
	m := &Manager{
		config:     config,
		registry:   registry,
		matchmaker: NewMatchmaker(registry),
		validate:   validator.New(),
		clients:    make(map[string]*Client),
		handlers:   make(map[string]EventHandler),
	}

	m.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     m.checkOrigin,
	}

	m.setupEventHandlers()

	return m
}

func (m *Manager) setupEventHandlers() {
	m.handlers[EventJoinRoom] = JoinRoomHandler
	m.handlers[EventMove] = MoveHandler
}

func (m *Manager) routeEvent(evt Event, c *Client) error {
	handler, ok := m.handlers[evt.Type]

	if !ok {
		return fmt.Errorf("cannot handle event of type %q", evt.Type)
	}

	return handler(evt, c)
}

// validatePayload checks an event payload against its struct tags and
// flattens any validation errors into a single client-facing error.
func (m *Manager) validatePayload(s interface{}) error {
	vErr := http_utils.ValidateStruct(m.validate, s)

	if reflect.ValueOf(vErr).IsZero() {
		return nil
	}

	return fmt.Errorf("invalid payload: %v", strings.Join(vErr.Errors, "; "))
}

func (m *Manager) addClient(client *Client) {
	m.Lock()
	defer m.Unlock()

	m.clients[client.ID] = client
}

func (m *Manager) removeClient(client *Client) {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.clients[client.ID]; ok {
		client.connection.Close()
		delete(m.clients, client.ID)
	}
}

// Websocket connection handler. Blocks until the client errors out or the
// server force-disconnects it, then tears down the client's room: a single
// disconnection ends the game for both players.
func (m *Manager) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)

	if err != nil {
		log.Printf("error upgrading to websocket connection: %v", err)
		return
	}

	client := NewClient(conn, m)
	m.addClient(client)

	ctx, cancel := context.WithCancel(r.Context())

	defer func() {
		cancel()
		close(client.done)

		peers := m.registry.Drop(client.ID)
		m.removeClient(client)

		for _, peer := range peers {
			peer.ForceDisconnect()
		}
	}()

	go client.readMessages(ctx)
	go client.writeMessages(ctx)

	err = <-client.Err()

	if !errors.Is(err, errServerDisconnect) {
		log.Println("client closed:", client.ID, err)
	}
}

// Origins on the allow-list may connect; requests without an Origin header
// (non-browser clients) are let through.
func (m *Manager) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	if origin == "" {
		return true
	}

	return slices.Contains(m.config.AllowedOrigins, origin)
}
