package burrow

import (
	"slices"

	"lukechampine.com/uint128"
)

// Hash returns the memoization key of s.
//
// Every token is encoded in 7 bits: its cell number (Position.cell), plus 32
// when StoppedWhenStuck and 64 when StuckInHallway. The codes of each kind are
// sorted and packed at bit offset 7·(kind·depth + i), so which token of a kind
// stands where does not matter. The last mover's code, or 127 for an initial
// State, takes the top field at 7·4·depth.
//
// Two States hash equal iff they hold the same multiset of (kind, position,
// flags) and the same last mover code.
func (s State) Hash() Key {
	// 1) Bucket codes per kind
	var codes [NumKinds][MaxDepth]uint8
	var counts [NumKinds]int
	for _, t := range s.tokens {
		codes[t.Kind][counts[t.Kind]] = s.code(t)
		counts[t.Kind]++
	}

	// 2) Pack sorted codes
	h := uint128.Zero
	var k Kind
	var i int
	for k = Amber; k < NumKinds; k++ {
		bucket := codes[k][:counts[k]]
		slices.Sort(bucket)
		for i = range bucket {
			h = h.Or(field(bucket[i], int(k)*s.depth+i))
		}
	}

	// 3) Last mover on top
	last := uint8(codeNone)
	if s.moved {
		last = s.code(s.last)
	}

	return h.Or(field(last, NumKinds*s.depth))
}

// code is the 7-bit contribution of t to the Key.
func (s State) code(t Token) uint8 {
	c := uint8(t.Pos.cell(s.depth))
	if t.StoppedWhenStuck {
		c += flagStopped
	}
	if t.StuckInHallway {
		c += flagStuck
	}

	return c
}

func field(code uint8, slot int) Key {
	return uint128.From64(uint64(code)).Lsh(uint(codeBits * slot))
}
