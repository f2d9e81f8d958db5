package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/pairplay/chess-relay/util"
)

func newTestManager() *Manager {
	config := &util.Config{
		Port:           "8080",
		AllowedOrigins: []string{"http://localhost:3000"},
	}

	return NewManager(config, NewRegistry())
}

func startTestServer(t *testing.T, m *Manager) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/newgame", m.NewGameHandler)
	mux.HandleFunc("/ws", m.ServeWS)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func dialWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	t.Cleanup(func() { conn.Close() })

	return conn
}

func newGame(t *testing.T, m *Manager) newGameResponse {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, "/newgame", nil)
	response := httptest.NewRecorder()

	m.NewGameHandler(response, request)

	require.Equal(t, http.StatusOK, response.Code)

	var data newGameResponse
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &data))

	return data
}

func sendEvent(t *testing.T, conn *websocket.Conn, evtType string, payload any) {
	t.Helper()

	evt, err := NewEvent(evtType, payload)
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(evt))
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var evt Event
	require.NoError(t, conn.ReadJSON(&evt))

	return evt
}

func decodePayload[P any](t *testing.T, evt Event) P {
	t.Helper()

	var payload P
	require.NoError(t, json.Unmarshal(evt.Payload, &payload))

	return payload
}

func requireErrorEvent(t *testing.T, conn *websocket.Conn, substr string) {
	t.Helper()

	evt := readEvent(t, conn)
	require.Equal(t, EventError, evt.Type)
	require.Contains(t, decodePayload[PayloadError](t, evt).Message, substr)
}

// roomCount reads registry sizes under the registry lock.
func roomCount(m *Manager) (open, closed int) {
	m.registry.mu.Lock()
	defer m.registry.mu.Unlock()

	return len(m.registry.open), len(m.registry.closed)
}
