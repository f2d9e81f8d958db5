package ws

import (
	"sync"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Registry owns all room bookkeeping: rooms waiting for a second player,
// full rooms, the FIFO order of waiting rooms, and the reverse index from
// connection to room. A single mutex serializes every mutation; callers
// broadcast to clients only after the lock is released.
type Registry struct {
	mu        sync.Mutex
	open      map[string]*Room
	closed    map[string]*Room
	openOrder []string          // room ids, oldest first
	connRooms map[string]string // socket id -> room id
}

func NewRegistry() *Registry {
	return &Registry{
		open:      make(map[string]*Room),
		closed:    make(map[string]*Room),
		connRooms: make(map[string]string),
	}
}

type joinResult struct {
	fen     string
	already bool      // connection was already joined, nothing to emit
	ready   bool      // this join completed the pair
	peers   []*Client // everyone connected to the room, including the caller
}

// Join registers a connection with a room after checking the player's
// credentials. Closed rooms are checked before open ones so a room stays
// joinable after it fills up.
func (rg *Registry) Join(p PayloadJoinRoom, c *Client) (joinResult, error) {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	room, ok := rg.room(p.RoomID)

	if !ok {
		return joinResult{}, ErrRoomNotFound
	}

	color, ok := room.PlayerColor(p.PlayerID)

	if !ok {
		return joinResult{}, ErrNotAParticipant
	}

	if string(color) != p.PlayerColor {
		return joinResult{}, ErrColorMismatch
	}

	if joined, ok := rg.connRooms[c.ID]; ok {
		if joined == p.RoomID {
			return joinResult{already: true}, nil
		}
		return joinResult{}, ErrAlreadyInRoom
	}

	room.Clients[c.ID] = c
	rg.connRooms[c.ID] = p.RoomID

	return joinResult{
		fen:   room.Game.FEN(),
		ready: len(room.Clients) == 2,
		peers: lo.Values(room.Clients),
	}, nil
}

type moveResult struct {
	color  string // color that made the move
	over   bool
	winner string // empty on a draw
	peers  []*Client
}

// Move applies a player's move to the room's game. Only closed rooms can
// accept moves; an open room is still missing its second player.
func (rg *Registry) Move(p PayloadMove) (moveResult, error) {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	room, ok := rg.closed[p.RoomID]

	if !ok {
		return moveResult{}, ErrRoomNotFound
	}

	color, ok := room.PlayerColor(p.PlayerID)

	if !ok {
		return moveResult{}, ErrNotAParticipant
	}

	if color != room.Game.Turn() {
		return moveResult{}, ErrWrongTurn
	}

	if err := room.Game.Apply(p.Move.Move()); err != nil {
		return moveResult{}, err
	}

	result := moveResult{
		color: string(color),
		peers: lo.Values(room.Clients),
	}

	if over, winner := room.Game.Outcome(); over {
		result.over = true
		result.winner = string(winner)
		rg.remove(room.ID)
	}

	return result, nil
}

// Drop tears down the room a connection belongs to and returns the other
// clients that must be forcibly disconnected. No-op for connections that
// never joined a room.
func (rg *Registry) Drop(socketID string) []*Client {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	roomID, ok := rg.connRooms[socketID]

	if !ok {
		return nil
	}

	room, ok := rg.room(roomID)

	if !ok {
		delete(rg.connRooms, socketID)
		return nil
	}

	peers := lo.Reject(lo.Values(room.Clients), func(c *Client, _ int) bool {
		return c.ID == socketID
	})

	rg.remove(roomID)

	return peers
}

// room looks a room up by id, checking closed rooms first.
func (rg *Registry) room(id string) (*Room, bool) {
	if r, ok := rg.closed[id]; ok {
		return r, true
	}

	r, ok := rg.open[id]

	return r, ok
}

// remove purges a room from both buckets, the FIFO order, and the
// connection index. Callers must hold rg.mu.
func (rg *Registry) remove(roomID string) {
	room, ok := rg.room(roomID)

	if !ok {
		return
	}

	for socketID := range room.Clients {
		delete(rg.connRooms, socketID)
	}

	delete(rg.open, roomID)
	delete(rg.closed, roomID)

	if i := slices.Index(rg.openOrder, roomID); i >= 0 {
		rg.openOrder = append(rg.openOrder[:i], rg.openOrder[i+1:]...)
	}
}
