package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGameWhiteToMove(t *testing.T) {
	g := New()

	require.Equal(t, White, g.Turn())

	over, _ := g.Outcome()
	require.False(t, over)
}

func TestApplyMoveChangesTurn(t *testing.T) {
	g := New()
	before := g.FEN()

	err := g.Apply(Move{From: "e2", To: "e4"})

	require.NoError(t, err)
	require.Equal(t, Black, g.Turn())
	require.NotEqual(t, before, g.FEN())
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	g := New()
	before := g.FEN()

	// pawns cannot jump three squares
	err := g.Apply(Move{From: "e2", To: "e5"})

	require.ErrorIs(t, err, ErrIllegalMove)
	require.Equal(t, before, g.FEN())
	require.Equal(t, White, g.Turn())
}

func TestApplyRejectsMalformedSquare(t *testing.T) {
	g := New()

	err := g.Apply(Move{From: "zz", To: "e4"})

	require.ErrorIs(t, err, ErrIllegalMove)
}

func TestApplyPromotion(t *testing.T) {
	g, err := NewFromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)

	err = g.Apply(Move{From: "a7", To: "a8", Promotion: "q"})

	require.NoError(t, err)
	require.Equal(t, Black, g.Turn())
}

func TestFoolsMateOutcome(t *testing.T) {
	g := New()

	moves := []Move{
		{From: "f2", To: "f3"},
		{From: "e7", To: "e5"},
		{From: "g2", To: "g4"},
	}

	for _, m := range moves {
		require.NoError(t, g.Apply(m))

		over, _ := g.Outcome()
		require.False(t, over)
	}

	require.NoError(t, g.Apply(Move{From: "d8", To: "h4"}))

	over, winner := g.Outcome()
	require.True(t, over)
	require.Equal(t, Black, winner)
}

func TestBackRankMateOutcome(t *testing.T) {
	g, err := NewFromFEN("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	require.NoError(t, err)

	require.NoError(t, g.Apply(Move{From: "a1", To: "a8"}))

	over, winner := g.Outcome()
	require.True(t, over)
	require.Equal(t, White, winner)
}
