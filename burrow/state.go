package burrow

import (
	"fmt"
	"strings"
)

// State is an immutable arrangement of tokens in a burrow.
//
// tokens is indexed by token ID and cells maps every Position.cell to the ID
// standing there (noToken when empty). Both slices are shared between a State
// and the copies of it; they are only ever replaced, never written, once the
// State has been returned to a caller.
type State struct {
	depth  int
	tokens []Token
	cells  []int8
	last   Token
	moved  bool
}

// NewState validates tokens and builds the initial State of a burrow whose
// rooms are depth slots deep. Token IDs are reassigned to the slice index;
// flags are kept as given.
//
// Errors: ErrInvalidDepth, ErrInvalidPosition, ErrOccupied, ErrKindCount.
func NewState(depth int, tokens []Token) (State, error) {
	// 1) Validate depth before sizing anything
	if depth < 1 || depth > MaxDepth {
		return State{}, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}

	// 2) Place every token, rejecting bad cells and collisions
	s := State{
		depth:  depth,
		tokens: make([]Token, len(tokens)),
		cells:  newCells(depth),
	}
	var counts [NumKinds]int
	var i int
	var t Token
	for i, t = range tokens {
		if t.Kind >= NumKinds {
			return State{}, fmt.Errorf("%w: token %d", ErrUnknownKind, i)
		}
		if !t.Pos.valid(depth) {
			return State{}, fmt.Errorf("%w: token %d at %s", ErrInvalidPosition, i, t.Pos)
		}
		c := t.Pos.cell(depth)
		if s.cells[c] != noToken {
			return State{}, fmt.Errorf("%w: %s", ErrOccupied, t.Pos)
		}
		t.ID = uint8(i)
		s.tokens[i] = t
		s.cells[c] = int8(i)
		counts[t.Kind]++
	}

	// 3) Every room must be fillable exactly
	var k Kind
	for k = Amber; k < NumKinds; k++ {
		if counts[k] != depth {
			return State{}, fmt.Errorf("%w: %s has %d, want %d", ErrKindCount, k, counts[k], depth)
		}
	}

	return s, nil
}

// MustState is NewState for literal arrangements known to be valid.
// It panics on error.
func MustState(depth int, tokens []Token) State {
	s, err := NewState(depth, tokens)
	if err != nil {
		panic(err)
	}

	return s
}

func newCells(depth int) []int8 {
	cells := make([]int8, HallwayLen+NumKinds*depth)
	for i := range cells {
		cells[i] = noToken
	}

	return cells
}

// Depth returns the number of slots per room.
func (s State) Depth() int { return s.depth }

// Tokens returns a copy of the tokens, indexed by ID.
func (s State) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)

	return out
}

// LastMoved returns the token moved to reach s; ok is false for an initial State.
func (s State) LastMoved() (Token, bool) { return s.last, s.moved }

// Occupant returns the token standing at p, if any.
func (s State) Occupant(p Position) (Token, bool) {
	if !p.valid(s.depth) {
		return Token{}, false
	}
	id := s.cells[p.cell(s.depth)]
	if id == noToken {
		return Token{}, false
	}

	return s.tokens[id], true
}

func (s State) occupied(p Position) bool {
	return s.cells[p.cell(s.depth)] != noToken
}

// IsComplete reports whether every token is in its home room.
func (s State) IsComplete() bool {
	for _, t := range s.tokens {
		if !t.IsHome() {
			return false
		}
	}

	return true
}

// Apply returns the State reached by performing m. s is left untouched.
//
// The moved token is flagged StuckInHallway when it lands on a hallway cell
// and keeps StoppedWhenStuck only while it stays in the hallway. If another
// token moves right after a hallway-stuck token, that previous mover is
// latched StoppedWhenStuck.
func (s State) Apply(m Move) State {
	next := State{
		depth:  s.depth,
		tokens: make([]Token, len(s.tokens)),
		cells:  make([]int8, len(s.cells)),
		moved:  true,
	}
	copy(next.tokens, s.tokens)
	copy(next.cells, s.cells)

	if s.moved && s.last.ID != m.Source.ID && s.last.StuckInHallway {
		prev := s.last
		prev.StoppedWhenStuck = true
		next.tokens[prev.ID] = prev
	}

	d := m.Dest
	inHall := d.Pos.InHallway()
	d.StuckInHallway = inHall
	d.StoppedWhenStuck = d.StoppedWhenStuck && inHall
	next.cells[m.Source.Pos.cell(s.depth)] = noToken
	next.cells[d.Pos.cell(s.depth)] = int8(d.ID)
	next.tokens[d.ID] = d
	next.last = d

	return next
}

// String renders s as the puzzle's text diagram.
func (s State) String() string {
	var b strings.Builder
	b.WriteString("#############\n#")
	var i int
	for i = 0; i < HallwayLen; i++ {
		b.WriteByte(s.glyph(Hall(i)))
	}
	b.WriteString("#\n")

	var slot int
	var k Kind
	for slot = s.depth - 1; slot >= 0; slot-- {
		if slot == s.depth-1 {
			b.WriteString("###")
		} else {
			b.WriteString("  #")
		}
		for k = Amber; k < NumKinds; k++ {
			b.WriteByte(s.glyph(Room(k, slot)))
			b.WriteByte('#')
		}
		if slot == s.depth-1 {
			b.WriteString("##")
		}
		b.WriteByte('\n')
	}
	b.WriteString("  #########\n")

	return b.String()
}

func (s State) glyph(p Position) byte {
	if t, ok := s.Occupant(p); ok {
		return t.Kind.String()[0]
	}

	return '.'
}
