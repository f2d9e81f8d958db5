package ws

import "errors"

// Client-input errors. Each one is delivered as an error event to the
// connection that caused it and never touches other rooms or connections.
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrNotAParticipant = errors.New("player is not a participant in this room")
	ErrColorMismatch   = errors.New("color does not match the player's assigned color")
	ErrWrongTurn       = errors.New("it is not this player's turn")
	ErrAlreadyInRoom   = errors.New("connection already joined to another room")
)
