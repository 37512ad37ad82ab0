// Package solver finds the minimum energy needed to sort a burrow.
//
// What:
//
//   - Solve: recursive depth-first search over burrow.State.LegalMoves with
//     a permanent memo table (state key → best cost or unreachable) and an
//     on-path set that cuts cycles. Every move costs its token's per-step
//     cost; the answer is the smallest sum over a completing move sequence.
//
// The move graph is not acyclic (tokens can walk back and forth in the
// hallway), so the on-path set is what makes the recursion terminate.
// Revisiting a key already on the current path yields "unreachable" for that
// branch only; it never claims the state is unsolvable globally.
//
// Options:
//
//   - WithContext(ctx)    cancellation, checked once per state
//   - WithLogger(l)       logrus logger for a Debug summary of the search
//   - WithMaxDepth(limit) abort with ErrDepthLimit beyond limit moves
//   - WithOnVisit(fn)     pre-order hook; an error aborts the search
//
// Complexity:
//
//   - Time:   O(S·n·depth) with S distinct state keys and n tokens
//   - Memory: O(S) for the memo table, O(D) for the path (D = deepest path)
//
// Errors:
//
//   - ErrUnsolvable   no completion from the initial state
//   - ErrDepthLimit   recursion went beyond WithMaxDepth
//   - context errors  ctx canceled or past its deadline
//   - hook errors     propagated from OnVisit
package solver
