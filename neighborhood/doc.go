// Package neighborhood generates candidate swap moves over a project.Graph;
// see moves.go.
package neighborhood
