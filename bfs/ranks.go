package bfs

// Ranks computes, for each of the n vertices 0..n-1, the length in edges of
// the longest path from any source (indegree-0) vertex to it. This is the
// BFS-by-level layering: all rank-0 vertices (no predecessors) are peeled
// off first, then every vertex whose predecessors are all peeled becomes
// rank k+1, and so on until the graph is drained.
//
// Ranks assumes the graph is acyclic; running it on a cyclic graph leaves
// the vertices inside the cycle (and anything only reachable through it) at
// their zero-valued rank, since their indegree never reaches zero. Callers
// are expected to validate acyclicity with dfs.HasCycle first.
// Complexity: O(V+E).
func Ranks(n int, successors Successors) []int {
	indegree := make([]int, n)
	for u := 0; u < n; u++ {
		for _, v := range successors(u) {
			indegree[v]++
		}
	}

	rank := make([]int, n)
	queue := make([]int, 0, n)
	for u := 0; u < n; u++ {
		if indegree[u] == 0 {
			queue = append(queue, u)
		}
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, v := range successors(u) {
			if rank[u]+1 > rank[v] {
				rank[v] = rank[u] + 1
			}
			indegree[v]--
			if indegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	return rank
}

// MaxRank returns the highest value in ranks, or -1 if ranks is empty.
func MaxRank(ranks []int) int {
	max := -1
	for _, r := range ranks {
		if r > max {
			max = r
		}
	}

	return max
}
