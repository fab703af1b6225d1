// Package search is the tabu search driver built on project.Graph,
// schedule, neighborhood, and tabulist; see schedule.go for the entry
// point.
package search
