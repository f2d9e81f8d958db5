package ws

import (
	"encoding/json"

	"github.com/pairplay/chess-relay/game"
)

type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type EventHandler func(e Event, c *Client) error

const (
	// client -> server
	EventJoinRoom = "joinRoom"
	EventMove     = "move"

	// server -> client
	EventError            = "error"
	EventRoomJoined       = "roomJoined"
	EventBothPlayersReady = "bothPlayersReady"
	EventMoveMade         = "moveMade"
	EventGameOver         = "gameOver"

	// internal sentinel telling a client's write pump to close the
	// connection after draining its egress
	eventDisconnect = "_disconnect"
)

type PayloadError struct {
	Message string `json:"message"`
}

type PayloadJoinRoom struct {
	RoomID      string `json:"roomId" validate:"required"`
	PlayerID    string `json:"playerId" validate:"required"`
	PlayerColor string `json:"playerColor" validate:"required,oneof=w b"`
}

type PayloadMove struct {
	RoomID   string      `json:"roomId" validate:"required"`
	PlayerID string      `json:"playerId" validate:"required"`
	Move     MovePayload `json:"move" validate:"required"`
}

type MovePayload struct {
	From      string `json:"from" validate:"required,len=2"`
	To        string `json:"to" validate:"required,len=2"`
	Promotion string `json:"promotion,omitempty" validate:"omitempty,oneof=q r b n"`
}

func (p MovePayload) Move() game.Move {
	return game.Move{From: p.From, To: p.To, Promotion: p.Promotion}
}

type PayloadRoomJoined struct {
	RoomID      string `json:"roomId"`
	PlayerID    string `json:"playerId"`
	PlayerColor string `json:"playerColor"`
	Fen         string `json:"fen"`
}

type PayloadMoveMade struct {
	Move      MovePayload `json:"move"`
	MoveColor string      `json:"moveColor"`
}

type PayloadGameOver struct {
	Winner string `json:"winner,omitempty"`
}

func NewEvent(evtType string, payload any) (Event, error) {
	b, err := json.Marshal(payload)

	if err != nil {
		return Event{}, err
	}

	return Event{Type: evtType, Payload: b}, nil
}

func NewErrorEvent(message string) (Event, error) {
	return NewEvent(EventError, PayloadError{Message: message})
}
