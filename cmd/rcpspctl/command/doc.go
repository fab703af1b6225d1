// Package command holds rcpspctl's cli.Command implementations: graph,
// schedule, and benchmark.
package command
