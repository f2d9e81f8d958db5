package ws

import (
	"log"
	"net/http"

	"github.com/pairplay/chess-relay/http_utils"
)

type newGameResponse struct {
	RoomID      string `json:"roomId"`
	PlayerID    string `json:"playerId"`
	PlayerColor string `json:"playerColor"`
}

// NewGameHandler hands out room and player identifiers. The first request
// opens a room; the next one fills the oldest waiting room. It cannot fail.
func (m *Manager) NewGameHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http_utils.SendResponse(w, http.StatusMethodNotAllowed, http_utils.NewBaseResponse(false, "method not allowed"))
		return
	}

	roomID, playerID, color := m.matchmaker.NewGame()

	log.Printf("new game request: room %v, color %v", roomID, color)

	http_utils.SendResponse(w, http.StatusOK, newGameResponse{
		RoomID:      roomID,
		PlayerID:    playerID,
		PlayerColor: string(color),
	})
}
