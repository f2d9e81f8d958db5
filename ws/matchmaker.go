package ws

import (
	"github.com/google/uuid"

	"github.com/pairplay/chess-relay/game"
)

// Matchmaker assigns players to rooms. The first caller opens a room and
// plays white; the next caller completes the oldest waiting room and plays
// black. Possession of the returned player id is what authorizes later
// joinRoom and move events.
type Matchmaker struct {
	registry *Registry
}

func NewMatchmaker(registry *Registry) *Matchmaker {
	return &Matchmaker{registry: registry}
}

// NewGame pairs the caller into a room. It never fails.
func (mm *Matchmaker) NewGame() (roomID, playerID string, color game.Color) {
	rg := mm.registry

	rg.mu.Lock()
	defer rg.mu.Unlock()

	playerID = uuid.NewString()

	if len(rg.openOrder) == 0 {
		room := NewRoom(playerID)
		rg.open[room.ID] = room
		rg.openOrder = append(rg.openOrder, room.ID)

		return room.ID, playerID, game.White
	}

	roomID = rg.openOrder[0]
	rg.openOrder = rg.openOrder[1:]

	room := rg.open[roomID]
	room.BlackID = playerID

	delete(rg.open, roomID)
	rg.closed[roomID] = room

	return roomID, playerID, game.Black
}
