// Package project validates and owns an RCPSP instance's precedence DAG,
// durations, demands, and resource capacities, and answers the
// predecessor/successor/rank queries the rest of the solver is built on.
package project
