package ws

import (
	"github.com/google/uuid"

	"github.com/pairplay/chess-relay/game"
)

// Room pairs two players around a single game. The creator plays white;
// BlackID stays empty until the matchmaker fills the room. Clients holds
// the websocket connections currently joined, keyed by socket id.
type Room struct {
	ID      string
	WhiteID string
	BlackID string
	Game    *game.Game
	Clients map[string]*Client
}

func NewRoom(creatorID string) *Room {
	return &Room{
		ID:      uuid.NewString(),
		WhiteID: creatorID,
		Game:    game.New(),
		Clients: make(map[string]*Client),
	}
}

// PlayerColor returns the color assigned to playerID, or false if the
// player is not part of this room.
func (r *Room) PlayerColor(playerID string) (game.Color, bool) {
	switch {
	case playerID == r.WhiteID:
		return game.White, true
	case r.BlackID != "" && playerID == r.BlackID:
		return game.Black, true
	default:
		return "", false
	}
}
