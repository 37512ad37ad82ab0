// Package burrow models the amphipod burrow: a hallway of 11 cells above four
// rooms of uniform depth, and the tokens (amphipods) that must be sorted into
// their home rooms.
//
// What:
//
//   - State Model: an immutable State holding every Token, the room depth and
//     the most recently moved token. Successors are built with Apply, never by
//     mutation, so a search can branch freely.
//   - Move Generator: LegalMoves enumerates single-hop moves over a fixed
//     adjacency (hallway neighbours, doorway to room top, in-room up/down)
//     and applies two ordering overrides that force a token to keep moving
//     while it stands on a doorway or was halted in the hallway, and that
//     always settle a token deeper into its home room first.
//   - State Hasher: Hash packs a 7-bit code per token into a 128-bit Key.
//     Codes of the same kind are sorted first, so tokens of one kind are
//     interchangeable and relabeling them does not change the Key.
//   - Diagram I/O: Parse reads the puzzle's text diagram, Unfold inserts the
//     two extra rows of the deeper variant, and State.String renders it back.
//
// Topology (depth 2 shown, slot 0 is the deepest):
//
//	#############
//	#01234567890#   hallway cells 0..10; 2, 4, 6, 8 are doorways
//	###1#1#1#1###   slot depth-1 (top), rooms A B C D
//	  #0#0#0#0#     slot 0 (back)
//	  #########
//
// Key Types & Constants:
//
//   - Kind: Amber, Bronze, Copper, Desert with per-step Cost 1, 10, 100, 1000
//   - Position: Hall(i) or Room(kind, slot)
//   - Token, Move, State, Key
//   - MaxDepth: the deepest room the 128-bit Key can encode
//
// Complexity:
//
//   - IsComplete, Hash:  O(n) with n = 4·depth tokens
//   - Occupant:          O(1)
//   - LegalMoves:        O(n·depth)
//   - Apply:             O(n) (copy-on-write of the token and cell tables)
//
// Errors:
//
//   - ErrInvalidDepth     depth outside 1..MaxDepth
//   - ErrInvalidPosition  position not part of the burrow
//   - ErrOccupied         two tokens on one cell
//   - ErrKindCount        a kind does not have exactly depth tokens
//   - ErrUnknownKind      letter outside A..D
//   - ErrBadDiagram       text is not a burrow diagram
package burrow
