package dfs

// TopologicalOrder computes a deterministic topological ordering of the
// vertices 0..n-1 using the successors function, or ErrCycleDetected if the
// graph has a back-edge. It uses the classic White/Gray/Black DFS coloring:
// a Gray vertex reached again means a vertex on the current recursion stack
// is its own descendant, i.e. a cycle.
//
// Vertices are visited starting from 0 in ascending order, and each vertex's
// successors are visited in the order Successors returns them, so the result
// is stable across calls given a stable Successors implementation.
// Complexity: O(V+E).
func TopologicalOrder(n int, successors Successors) ([]int, error) {
	state := make([]int, n)
	order := make([]int, 0, n)

	var visit func(u int) error
	visit = func(u int) error {
		state[u] = Gray
		for _, v := range successors(u) {
			switch state[v] {
			case Gray:
				return &CycleError{Vertex: v}
			case White:
				if err := visit(v); err != nil {
					return err
				}
			}
		}
		state[u] = Black
		order = append(order, u)

		return nil
	}

	for u := 0; u < n; u++ {
		if state[u] == White {
			if err := visit(u); err != nil {
				return nil, err
			}
		}
	}

	// visit appends a vertex after all its successors are done, so the
	// accumulated order is reverse-topological; flip it in place.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// HasCycle reports whether the graph contains a cycle. It runs
// TopologicalOrder and discards the ordering.
func HasCycle(n int, successors Successors) bool {
	_, err := TopologicalOrder(n, successors)

	return err != nil
}
