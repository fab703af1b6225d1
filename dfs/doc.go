// Package dfs implements depth-first topological ordering and cycle
// detection over graphs addressed by plain int vertex ids, so it has no
// dependency on project.Graph (which imports dfs to validate precedence
// relations at construction time).
package dfs
