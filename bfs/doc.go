// Package bfs layers a DAG's vertices into execution ranks by longest
// predecessor-chain length. See ranks.go for Ranks.
package bfs
