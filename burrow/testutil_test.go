package burrow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/burrow"
)

// exampleDiagram is the worked example of the puzzle statement.
const exampleDiagram = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

// solvedTokens returns every kind in its own room, slot 0 first.
func solvedTokens(depth int) []burrow.Token {
	var out []burrow.Token
	var k burrow.Kind
	for k = burrow.Amber; k < burrow.NumKinds; k++ {
		for slot := 0; slot < depth; slot++ {
			out = append(out, burrow.Place(k, burrow.Room(k, slot)))
		}
	}

	return out
}

// swapTopAB returns a solved burrow whose A and B room tops are exchanged.
func swapTopAB(t *testing.T, depth int) burrow.State {
	t.Helper()
	tokens := solvedTokens(depth)
	// Amber top is index depth-1, Bronze top is index 2*depth-1.
	tokens[depth-1].Kind = burrow.Bronze
	tokens[2*depth-1].Kind = burrow.Amber
	s, err := burrow.NewState(depth, tokens)
	require.NoError(t, err)

	return s
}

// findMove returns the move of token id to p from s.LegalMoves.
func findMove(t *testing.T, s burrow.State, id uint8, p burrow.Position) burrow.Move {
	t.Helper()
	for _, m := range s.LegalMoves() {
		if m.Source.ID == id && m.Dest.Pos == p {
			return m
		}
	}
	require.Failf(t, "move not found", "token %d to %s in\n%s", id, p, s)

	return burrow.Move{}
}

func destinations(moves []burrow.Move) []burrow.Position {
	out := make([]burrow.Position, len(moves))
	for i, m := range moves {
		out[i] = m.Dest.Pos
	}

	return out
}
