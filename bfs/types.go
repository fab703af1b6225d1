// Package bfs computes breadth-first execution rank layering over an
// integer-indexed DAG: the rank of a vertex is the length of the longest
// chain of predecessors leading to it, which project.Graph uses both as a
// display aid and as the construction order for the search driver's
// initial permutation.
//
// Like dfs, bfs operates on plain int ids via a successors callback so it
// has no dependency on project.Graph.
package bfs

// Successors returns the ids reachable by one outgoing edge from u.
type Successors func(u int) []int
