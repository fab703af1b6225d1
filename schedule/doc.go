// Package schedule evaluates activity permutations over project.Graph;
// see evaluate.go.
package schedule
