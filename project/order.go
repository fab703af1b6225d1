package project

import (
	"math/rand"
	"sort"
)

// InitialOrder flattens the rank layering into a topologically valid
// permutation: activities ordered by ascending rank, ties broken by
// ascending activity id for a deterministic result.
func (g *Graph) InitialOrder() []int {
	order := make([]int, g.n)
	for a := range order {
		order[a] = a
	}
	sort.Slice(order, func(i, j int) bool {
		ri, rj := g.ranks[order[i]], g.ranks[order[j]]
		if ri != rj {
			return ri < rj
		}

		return order[i] < order[j]
	})

	return order
}

// DiversifiedOrder produces another topologically valid permutation by
// shuffling each rank's activities independently and then flattening.
// Validity is preserved because no two activities within a rank have a
// precedence relation between them.
func (g *Graph) DiversifiedOrder(rng *rand.Rand) []int {
	byRank := make(map[int][]int)
	maxRank := 0
	for a, r := range g.ranks {
		byRank[r] = append(byRank[r], a)
		if r > maxRank {
			maxRank = r
		}
	}

	order := make([]int, 0, g.n)
	for r := 0; r <= maxRank; r++ {
		group := append([]int(nil), byRank[r]...)
		sort.Ints(group)
		rng.Shuffle(len(group), func(i, j int) { group[i], group[j] = group[j], group[i] })
		order = append(order, group...)
	}

	return order
}

// ValidateOrder reports whether perm is a valid permutation of [0, N) that
// respects every precedence edge: for every edge u->v, position(u) <
// position(v).
func (g *Graph) ValidateOrder(perm []int) bool {
	if len(perm) != g.n {
		return false
	}

	position := make([]int, g.n)
	seen := make([]bool, g.n)
	for pos, a := range perm {
		if a < 0 || a >= g.n || seen[a] {
			return false
		}
		seen[a] = true
		position[a] = pos
	}

	for u := 0; u < g.n; u++ {
		for _, v := range g.successors[u] {
			if position[u] >= position[v] {
				return false
			}
		}
	}

	return true
}

// CriticalPathLowerBound returns the longest path by duration from source to
// sink: a lower bound on any feasible makespan, used as an early-stop
// witness when the current best equals it.
func (g *Graph) CriticalPathLowerBound() int {
	return g.criticalLength
}

// computeCriticalPathLength runs the longest-path DP over topoOrder: for
// each vertex in topological order, its longest-path-so-far is the max over
// predecessors' values plus the predecessor's own duration. This replaces
// the exhaustive all-simple-paths search the algorithm was originally
// described with; over a DAG the DP is equivalent and runs in O(V+E)
// instead of time exponential in path count.
func (g *Graph) computeCriticalPathLength() int {
	longest := make([]int, g.n)
	for _, u := range g.topoOrder {
		for _, v := range g.successors[u] {
			candidate := longest[u] + g.duration[u]
			if candidate > longest[v] {
				longest[v] = candidate
			}
		}
	}

	sink := g.n - 1

	return longest[sink] + g.duration[sink]
}
