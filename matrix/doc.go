// Package matrix - dense grid storage shared by project, schedule, and
// tabulist. See dense.go for the Dense[T] type.
package matrix
