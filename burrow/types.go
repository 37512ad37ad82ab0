package burrow

import (
	"errors"
	"fmt"

	"lukechampine.com/uint128"
)

// Sentinel errors for burrow construction and parsing.
var (
	// ErrInvalidDepth indicates a room depth outside 1..MaxDepth.
	ErrInvalidDepth = errors.New("burrow: room depth out of range")

	// ErrInvalidPosition indicates a position that does not exist in the burrow.
	ErrInvalidPosition = errors.New("burrow: invalid position")

	// ErrOccupied indicates two tokens placed on the same cell.
	ErrOccupied = errors.New("burrow: cell already occupied")

	// ErrKindCount indicates a kind with a token count different from the room depth.
	ErrKindCount = errors.New("burrow: wrong number of tokens for kind")

	// ErrUnknownKind indicates a letter that names no kind.
	ErrUnknownKind = errors.New("burrow: unknown token kind")

	// ErrBadDiagram indicates text that could not be read as a burrow diagram.
	ErrBadDiagram = errors.New("burrow: malformed diagram")
)

const (
	// HallwayLen is the number of hallway cells.
	HallwayLen = 11

	// NumKinds is the number of token kinds, and of rooms.
	NumKinds = 4

	// MaxDepth is the deepest room supported. Each token takes 7 bits of the
	// 128-bit Key, plus 7 bits for the last mover: 7·(4·4+1) = 119.
	MaxDepth = 4
)

const (
	codeBits        = 7
	codeNone        = 127
	flagStopped     = 32
	flagStuck       = 64
	roomCellsOffset = HallwayLen
)

// noToken marks an empty cell in State.cells.
const noToken int8 = -1

// Kind is the type of a token. It selects the per-step cost and the home room.
type Kind uint8

// Token kinds, in increasing cost order. The numeric value is also the index
// of the home room (A is the leftmost room).
const (
	Amber Kind = iota
	Bronze
	Copper
	Desert
)

var kindCosts = [NumKinds]int{1, 10, 100, 1000}

// Cost returns the energy spent for one hop.
func (k Kind) Cost() int { return kindCosts[k] }

// Doorway returns the hallway index directly above the room of k.
func (k Kind) Doorway() int { return 2 * (int(k) + 1) }

func (k Kind) String() string {
	if k >= NumKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return string(rune('A' + k))
}

// ParseKind maps the letters A..D to their Kind.
func ParseKind(b byte) (Kind, error) {
	if b < 'A' || b > 'D' {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, b)
	}

	return Kind(b - 'A'), nil
}

// Token is a single amphipod. ID is its index in the owning State.
//
// StuckInHallway is set once the token stops on a hallway cell.
// StoppedWhenStuck latches when another token moved while this one was stuck
// in the hallway; LegalMoves then forces this token to move next. Neither
// flag changes what moves are physically possible.
type Token struct {
	ID               uint8
	Kind             Kind
	Pos              Position
	StuckInHallway   bool
	StoppedWhenStuck bool
}

// Place returns an unflagged token of kind k at p. The ID is assigned by NewState.
func Place(k Kind, p Position) Token {
	return Token{Kind: k, Pos: p}
}

// IsHome reports whether the token stands anywhere in its own room.
func (t Token) IsHome() bool {
	r, ok := t.Pos.Room()

	return ok && r == t.Kind
}

// Move is a single-hop transition of one token.
// Source and Dest share the ID; Cost is the token's per-step cost.
type Move struct {
	Source Token
	Dest   Token
	Cost   int
}

func (m Move) String() string {
	return fmt.Sprintf("%d(%s): %s -> %s", m.Source.ID, m.Source.Kind, m.Source.Pos, m.Dest.Pos)
}

// Key is the 128-bit fingerprint of a State used for memoization.
type Key = uint128.Uint128
