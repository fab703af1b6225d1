// Package tabulist provides the tabu search driver's recency memory of
// recently used swap keys; see types.go and list.go.
package tabulist
