package solver_test

import (
	"github.com/katalvlaran/amphipod/burrow"
)

const (
	A = burrow.Amber
	B = burrow.Bronze
	C = burrow.Copper
	D = burrow.Desert
)

// exampleDiagram is the worked example of the puzzle statement (cost 12521).
const exampleDiagram = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

// solved returns every kind at home, room by room, back slot first.
func solved(depth int) []burrow.Token {
	var out []burrow.Token
	var k burrow.Kind
	for k = A; k < burrow.NumKinds; k++ {
		for slot := 0; slot < depth; slot++ {
			out = append(out, burrow.Place(k, burrow.Room(k, slot)))
		}
	}

	return out
}

// relabel returns a solved burrow where the token at index i takes kinds[i].
func relabel(depth int, kinds map[int]burrow.Kind) burrow.State {
	tokens := solved(depth)
	for i, k := range kinds {
		tokens[i].Kind = k
	}

	return burrow.MustState(depth, tokens)
}

// swapTops exchanges the top tokens of the rooms of a and b.
func swapTops(depth int, a, b burrow.Kind) burrow.State {
	return relabel(depth, map[int]burrow.Kind{
		(int(a)+1)*depth - 1: b,
		(int(b)+1)*depth - 1: a,
	})
}
