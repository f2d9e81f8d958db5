// Package game wraps the chess rules engine behind the small surface the
// relay needs: apply a move, ask whose turn it is, and check for a result.
package game

import (
	"errors"
	"fmt"

	"github.com/corentings/chess"
)

type Color string

const (
	White Color = "w"
	Black Color = "b"
)

var ErrIllegalMove = errors.New("illegal move")

// Move is a coordinate move. Promotion is the lowercase piece letter
// ("q", "r", "b", "n") or empty.
type Move struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// UCI returns the move in long algebraic (UCI) form, e.g. "e2e4" or "a7a8q".
func (m Move) UCI() string {
	return m.From + m.To + m.Promotion
}

type Game struct {
	inner *chess.Game
}

// New creates a game from the standard starting position.
func New() *Game {
	return &Game{inner: chess.NewGame()}
}

// NewFromFEN creates a game from an arbitrary position.
func NewFromFEN(fen string) (*Game, error) {
	opt, err := chess.FEN(fen)

	if err != nil {
		return nil, err
	}

	return &Game{inner: chess.NewGame(opt)}, nil
}

// Turn reports which color moves next.
func (g *Game) Turn() Color {
	if g.inner.Position().Turn() == chess.White {
		return White
	}

	return Black
}

// FEN serializes the current position.
func (g *Game) FEN() string {
	return g.inner.FEN()
}

// Apply validates m against the current position and applies it. On
// rejection the position is left unchanged and the returned error wraps
// ErrIllegalMove.
func (g *Game) Apply(m Move) error {
	mv, err := chess.UCINotation{}.Decode(g.inner.Position(), m.UCI())

	if err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, m.UCI())
	}

	if err := g.inner.Move(mv); err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, m.UCI())
	}

	return nil
}

// Outcome reports whether the game has reached a terminal state and, if
// decisive, the winning color. winner is empty when the game is drawn or
// still in progress.
func (g *Game) Outcome() (over bool, winner Color) {
	switch g.inner.Outcome() {
	case chess.WhiteWon:
		return true, White
	case chess.BlackWon:
		return true, Black
	case chess.Draw:
		return true, ""
	default:
		return false, ""
	}
}
