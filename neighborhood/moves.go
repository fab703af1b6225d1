package neighborhood

import "github.com/rcpsp-go/rcpsp/project"

// Moves enumerates the precedence-feasible adjacent-window swap moves for
// perm: for each position p and each offset d in [1, swapRange) with
// p+d < N, consider swapping perm[p] with perm[p+d]. The result is in
// deterministic (p, d) enumeration order; it does not evaluate makespan.
//
// swapRange must be >= 2 for any move to be produced (d ranges over [1,
// swapRange)); callers enforce this as a configuration error (search
// package), not here.
func Moves(g *project.Graph, perm []int, swapRange int) []Move {
	n := len(perm)
	moves := make([]Move, 0, n*swapRange)

	for p := 0; p < n; p++ {
		for d := 1; d < swapRange && p+d < n; d++ {
			q := p + d
			if feasible(g, perm, p, q) {
				moves = append(moves, Move{I: perm[p], J: perm[q]})
			}
		}
	}

	return moves
}

// feasible applies a sufficient (not necessary) filter: swapping positions
// p and q (p < q) is rejected if any activity x at a position in [p, q]
// inclusive has an edge perm[p] -> x or x -> perm[q] in the precedence
// graph. Those are exactly the edges that would cross the swap boundary
// in the wrong direction after the exchange.
func feasible(g *project.Graph, perm []int, p, q int) bool {
	u, v := perm[p], perm[q]
	for pos := p; pos <= q; pos++ {
		x := perm[pos]
		if g.HasEdge(u, x) || g.HasEdge(x, v) {
			return false
		}
	}

	return true
}
