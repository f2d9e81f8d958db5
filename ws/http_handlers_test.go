package ws

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGamePairsCallers(t *testing.T) {
	m := newTestManager()

	first := newGame(t, m)

	require.NotEmpty(t, first.RoomID)
	require.NotEmpty(t, first.PlayerID)
	require.Equal(t, "w", first.PlayerColor)

	second := newGame(t, m)

	require.Equal(t, first.RoomID, second.RoomID)
	require.NotEqual(t, first.PlayerID, second.PlayerID)
	require.Equal(t, "b", second.PlayerColor)

	third := newGame(t, m)

	require.NotEqual(t, first.RoomID, third.RoomID)
	require.Equal(t, "w", third.PlayerColor)
}

func TestNewGameRejectsNonGet(t *testing.T) {
	m := newTestManager()

	request := httptest.NewRequest(http.MethodPost, "/newgame", nil)
	response := httptest.NewRecorder()

	m.NewGameHandler(response, request)

	require.Equal(t, http.StatusMethodNotAllowed, response.Code)
}
