package ws

import (
	"encoding/json"
	"fmt"
)

// JoinRoomHandler registers a connection with the room it claims, emits the
// current game state to the joining connection, and announces readiness to
// the whole room once both players are connected.
func JoinRoomHandler(e Event, c *Client) error {
	var payload PayloadJoinRoom

	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return fmt.Errorf("cannot unmarshal joinRoom payload: %w", err)
	}

	if err := c.manager.validatePayload(payload); err != nil {
		return err
	}

	result, err := c.manager.registry.Join(payload, c)

	if err != nil {
		return err
	}

	// duplicate join from the same connection
	if result.already {
		return nil
	}

	err = c.PushEventToEgress(EventRoomJoined, PayloadRoomJoined{
		RoomID:      payload.RoomID,
		PlayerID:    payload.PlayerID,
		PlayerColor: payload.PlayerColor,
		Fen:         result.fen,
	})

	if err != nil {
		return err
	}

	if result.ready {
		evt, err := NewEvent(EventBothPlayersReady, nil)

		if err != nil {
			return err
		}

		for _, peer := range result.peers {
			peer.PushToEgress(evt)
		}
	}

	return nil
}

// MoveHandler applies a move to the room's game and relays it to both
// players. When the game ends it broadcasts the result and disconnects
// everyone, which purges the room.
func MoveHandler(e Event, c *Client) error {
	var payload PayloadMove

	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return fmt.Errorf("cannot unmarshal move payload: %w", err)
	}

	if err := c.manager.validatePayload(payload); err != nil {
		return err
	}

	result, err := c.manager.registry.Move(payload)

	if err != nil {
		return err
	}

	evt, err := NewEvent(EventMoveMade, PayloadMoveMade{
		Move:      payload.Move,
		MoveColor: result.color,
	})

	if err != nil {
		return err
	}

	for _, peer := range result.peers {
		peer.PushToEgress(evt)
	}

	if result.over {
		overEvt, err := NewEvent(EventGameOver, PayloadGameOver{Winner: result.winner})

		if err != nil {
			return err
		}

		for _, peer := range result.peers {
			peer.PushToEgress(overEvt)
		}

		for _, peer := range result.peers {
			peer.ForceDisconnect()
		}
	}

	return nil
}
