package burrow

// topology holds the single-hop adjacency of a burrow with rooms of one depth.
// adj is indexed by Position.cell; neighbour order is fixed and decides the
// order in which LegalMoves reports moves.
type topology struct {
	depth int
	adj   [][]Position
}

// topologies is built once at package initialization for every supported
// depth and never written afterwards.
var topologies [MaxDepth + 1]*topology

func init() {
	for d := 1; d <= MaxDepth; d++ {
		topologies[d] = newTopology(d)
	}
}

// newTopology links every cell to its direct neighbours:
//   - hallway cell i to i-1 and i+1, plus the top slot of the room below a doorway;
//   - room slot s to s-1 and s+1 inside the room;
//   - the top slot additionally to its doorway.
func newTopology(depth int) *topology {
	top := &topology{
		depth: depth,
		adj:   make([][]Position, HallwayLen+NumKinds*depth),
	}

	// 1) Hallway
	var i int
	for i = 0; i < HallwayLen; i++ {
		var nb []Position
		if i > 0 {
			nb = append(nb, Hall(i-1))
		}
		if i < HallwayLen-1 {
			nb = append(nb, Hall(i+1))
		}
		if p := Hall(i); p.IsDoorway() {
			nb = append(nb, Room(Kind(i/2-1), depth-1))
		}
		top.adj[i] = nb
	}

	// 2) Rooms
	var k Kind
	var s int
	for k = Amber; k < NumKinds; k++ {
		for s = 0; s < depth; s++ {
			var nb []Position
			if s > 0 {
				nb = append(nb, Room(k, s-1))
			}
			if s < depth-1 {
				nb = append(nb, Room(k, s+1))
			} else {
				nb = append(nb, Hall(k.Doorway()))
			}
			top.adj[Room(k, s).cell(depth)] = nb
		}
	}

	return top
}

// neighbors returns the cells one hop away from p. The slice is shared; callers
// must not modify it.
func (t *topology) neighbors(p Position) []Position {
	return t.adj[p.cell(t.depth)]
}
