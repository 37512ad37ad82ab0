package burrow

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	hallwayRow = regexp.MustCompile(`^#([.A-Z]{11})#$`)
	roomRow    = regexp.MustCompile(`^#{1,3}([.A-Z])#([.A-Z])#([.A-Z])#([.A-Z])#{1,3}$`)
	wallRow    = regexp.MustCompile(`^#+$`)
)

// unfoldRows are inserted below the top room row by Unfold.
var unfoldRows = []string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// Parse reads a burrow diagram such as
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// The number of room rows sets the depth. Tokens get their IDs room by room,
// back slot first, followed by any tokens in the hallway.
func Parse(text string) (State, error) {
	var hall string
	var rows [][]string
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "", wallRow.MatchString(line):
		case hallwayRow.MatchString(line):
			if hall != "" {
				return State{}, fmt.Errorf("%w: second hallway on line %d", ErrBadDiagram, n+1)
			}
			hall = hallwayRow.FindStringSubmatch(line)[1]
		case roomRow.MatchString(line):
			rows = append(rows, roomRow.FindStringSubmatch(line)[1:])
		default:
			return State{}, fmt.Errorf("%w: line %d: %q", ErrBadDiagram, n+1, line)
		}
	}
	if hall == "" || len(rows) == 0 {
		return State{}, fmt.Errorf("%w: missing hallway or rooms", ErrBadDiagram)
	}

	depth := len(rows)
	var tokens []Token
	var k Kind
	var slot int
	for k = Amber; k < NumKinds; k++ {
		for slot = 0; slot < depth; slot++ {
			glyph := rows[depth-1-slot][k]
			if glyph == "." {
				continue
			}
			kind, err := ParseKind(glyph[0])
			if err != nil {
				return State{}, err
			}
			tokens = append(tokens, Place(kind, Room(k, slot)))
		}
	}
	for i := 0; i < HallwayLen; i++ {
		if hall[i] == '.' {
			continue
		}
		kind, err := ParseKind(hall[i])
		if err != nil {
			return State{}, err
		}
		tokens = append(tokens, Place(kind, Hall(i)))
	}

	return NewState(depth, tokens)
}

// Unfold inserts the two extra rows of the deep variant below the top room
// row, turning a depth-2 diagram into a depth-4 one.
func Unfold(text string) (string, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		if !roomRow.MatchString(strings.TrimSpace(line)) {
			continue
		}
		out := make([]string, 0, len(lines)+len(unfoldRows))
		out = append(out, lines[:i+1]...)
		out = append(out, unfoldRows...)
		out = append(out, lines[i+1:]...)

		return strings.Join(out, "\n") + "\n", nil
	}

	return "", fmt.Errorf("%w: no room row to unfold", ErrBadDiagram)
}
