package burrow

// LegalMoves enumerates the single-hop moves available from s.
//
// Two overrides run before the generic enumeration, each returning a single
// token's moves:
//  1. If the last mover stands on a doorway, or is halted while stuck in the
//     hallway, only that token may move. Multi-hop walks are completed before
//     any other token is considered.
//  2. If a token in its home room has a free slot right behind it and the
//     room holds no stranger, the only move is that step deeper.
//
// Otherwise every token contributes the moves of movesFor, in ID order.
func (s State) LegalMoves() []Move {
	// 1) Keep the last mover going
	if s.moved {
		last := s.last
		if last.Pos.IsDoorway() || (last.Pos.InHallway() && last.StoppedWhenStuck) {
			return s.movesFor(last)
		}
	}

	// 2) Settle deeper into the home room
	for _, t := range s.tokens {
		if !t.IsHome() || !s.homeAccepts(t.Kind) {
			continue
		}
		if d := t.Pos.deepen(); !s.occupied(d) {
			return []Move{s.moveTo(t, d)}
		}
	}

	// 3) Generic enumeration
	var moves []Move
	for _, t := range s.tokens {
		moves = append(moves, s.movesFor(t)...)
	}

	return moves
}

// movesFor lists the hops of t to free neighbouring cells it may enter.
func (s State) movesFor(t Token) []Move {
	// 1) Parked at the back of its room: never moves again
	if t.Pos == Room(t.Kind, 0) {
		return nil
	}

	// 2) At home with only its own kind behind it: nothing to gain by leaving
	if t.IsHome() && s.settledBehind(t) {
		return nil
	}

	var moves []Move
	for _, p := range topologies[s.depth].neighbors(t.Pos) {
		if s.occupied(p) {
			continue
		}
		if p.InHallway() || t.Pos.SameRoom(p) || s.enterable(t.Kind, p) {
			moves = append(moves, s.moveTo(t, p))
		}
	}

	return moves
}

// enterable reports whether a token of kind k may step onto room cell p:
// p must be in k's room and that room may hold no token of another kind.
func (s State) enterable(k Kind, p Position) bool {
	r, ok := p.Room()

	return ok && r == k && s.homeAccepts(k)
}

// homeAccepts reports whether every slot of k's room is empty or holds a k.
func (s State) homeAccepts(k Kind) bool {
	for slot := 0; slot < s.depth; slot++ {
		if o, ok := s.Occupant(Room(k, slot)); ok && o.Kind != k {
			return false
		}
	}

	return true
}

// settledBehind reports whether every slot behind t, down to the back wall,
// is taken by a token of t's kind.
func (s State) settledBehind(t Token) bool {
	for slot := 0; slot < t.Pos.Index(); slot++ {
		o, ok := s.Occupant(Room(t.Kind, slot))
		if !ok || o.Kind != t.Kind {
			return false
		}
	}

	return true
}

func (s State) moveTo(t Token, p Position) Move {
	d := t
	d.Pos = p

	return Move{Source: t, Dest: d, Cost: t.Kind.Cost()}
}
