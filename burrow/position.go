package burrow

import "fmt"

const hallArea uint8 = 0

// Position is a cell of the burrow: a hallway cell or a slot of one room.
// Room slots are numbered from the back wall, so slot 0 is the deepest and
// slot depth-1 sits right below the doorway. The zero value is Hall(0).
type Position struct {
	area  uint8 // hallArea, or 1+Kind for the room of that kind
	index uint8
}

// Hall returns hallway cell i (0..10).
func Hall(i int) Position {
	return Position{area: hallArea, index: uint8(i)}
}

// Room returns slot of the room that belongs to kind k.
func Room(k Kind, slot int) Position {
	return Position{area: uint8(k) + 1, index: uint8(slot)}
}

// InHallway reports whether p is a hallway cell.
func (p Position) InHallway() bool { return p.area == hallArea }

// Room returns the kind whose room contains p; ok is false in the hallway.
func (p Position) Room() (k Kind, ok bool) {
	if p.InHallway() {
		return 0, false
	}

	return Kind(p.area - 1), true
}

// Index is the hallway cell number or the room slot.
func (p Position) Index() int { return int(p.index) }

// IsDoorway reports whether p is one of the hallway cells 2, 4, 6, 8.
func (p Position) IsDoorway() bool {
	return p.InHallway() && p.index >= 2 && p.index <= 8 && p.index%2 == 0
}

// SameRoom reports whether p and o are slots of one room.
func (p Position) SameRoom(o Position) bool {
	return !p.InHallway() && p.area == o.area
}

// deepen returns the slot right behind p, or p itself when p is a hallway
// cell or already the back slot.
func (p Position) deepen() Position {
	if p.InHallway() || p.index == 0 {
		return p
	}

	return Position{area: p.area, index: p.index - 1}
}

// valid reports whether p exists in a burrow with rooms of the given depth.
func (p Position) valid(depth int) bool {
	if p.InHallway() {
		return p.index < HallwayLen
	}

	return p.area <= NumKinds && int(p.index) < depth
}

// cell maps p to a dense index: hallway cells first, then the rooms in kind
// order. The same number is the position part of a token's hash code.
func (p Position) cell(depth int) int {
	if p.InHallway() {
		return int(p.index)
	}

	return roomCellsOffset + int(p.area-1)*depth + int(p.index)
}

func (p Position) String() string {
	if p.InHallway() {
		return fmt.Sprintf("H%d", p.index)
	}

	return fmt.Sprintf("%s%d", Kind(p.area-1), p.index)
}
