// Package rcpsp is a tabu-search solver for the Resource-Constrained
// Project Scheduling Problem: given a set of activities with durations,
// precedence relations, and demands on shared renewable resources, find
// an activity ordering whose serial-schedule makespan is as small as
// possible.
//
// The module is organized as a pipeline of small, independently testable
// packages:
//
//	dfs/          — generic topological ordering and cycle detection over a
//	                Successors callback (no project dependency)
//	bfs/          — generic execution-rank layering (Kahn-style peeling)
//	project/      — the precedence graph: durations, demands, successors,
//	                resource capacities, topological order, critical path
//	schedule/     — the serial schedule generation scheme: turns an activity
//	                permutation into start times and a makespan
//	neighborhood/ — candidate move generation: feasible adjacent-window swaps
//	                that keep a permutation topologically valid
//	tabulist/     — the tabu list: a fixed-capacity, O(1)-membership set of
//	                recently-used swap pairs with randomized aging
//	search/       — the tabu search driver: single- and multi-walker loops
//	                tying the above together into Schedule
//
// Two collaborators sit outside that core pipeline:
//
//	psplib/ — reads the PSPLIB ".sm" benchmark text format into
//	          project.BuildInput
//	dot/    — renders a project.Graph as Graphviz DOT source
//
// and two packages consume the pipeline end to end:
//
//	bench/          — schedules every instance file in a directory and
//	                  summarizes makespan/runtime statistics
//	cmd/rcpspctl/   — the graph/schedule/benchmark command-line tool
//
// A minimal end-to-end use of the library:
//
//	g, err := project.New(project.BuildInput{
//		Durations:  []int{0, 3, 2, 0},
//		Demands:    [][]int{{0}, {2}, {1}, {0}},
//		Successors: [][]int{{1, 2}, {3}, {3}, {}},
//		Capacities: []int{2},
//	})
//	if err != nil {
//		// handle invalid instance
//	}
//	res, err := search.Schedule(g, search.DefaultOptions())
package rcpsp
