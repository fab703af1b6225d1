package tabulist

import "github.com/rcpsp-go/rcpsp/matrix"

// Contains reports whether (i, j) is currently tabu, in O(1). The pair is
// treated as unordered: Contains(i, j) and Contains(j, i) always agree.
func (l *List) Contains(i, j int) bool {
	a, b := normalize(i, j)

	return l.membership.MustAt(a, b)
}

// Insert evicts the entry at the write cursor (clearing its membership
// bit, if occupied), writes (i, j) in its place, sets its bit, and
// advances the cursor modulo capacity. If (i, j) is already in the list,
// its older slot is emptied first, so a pair is never held twice.
func (l *List) Insert(i, j int) {
	a, b := normalize(i, j)

	if l.membership.MustAt(a, b) {
		for idx, e := range l.entries {
			if e.i == a && e.j == b {
				l.entries[idx] = entry{i: -1, j: -1}
			}
		}
	}

	old := l.entries[l.cur]
	if !old.empty() {
		l.membership.MustSet(old.i, old.j, false)
	}

	l.entries[l.cur] = entry{i: a, j: b}
	l.membership.MustSet(a, b, true)
	l.cur = (l.cur + 1) % l.capacity
}

// Prune diversifies the list by shuffling the indices of its non-empty
// entries and clearing floor(0.3 * count) of them, including their
// membership bits.
func (l *List) Prune() {
	occupied := make([]int, 0, l.capacity)
	for idx, e := range l.entries {
		if !e.empty() {
			occupied = append(occupied, idx)
		}
	}

	l.rng.Shuffle(len(occupied), func(i, j int) { occupied[i], occupied[j] = occupied[j], occupied[i] })

	toRemove := int(0.3 * float64(len(occupied)))
	for m := 0; m < toRemove; m++ {
		idx := occupied[m]
		e := l.entries[idx]
		l.membership.MustSet(e.i, e.j, false)
		l.entries[idx] = entry{i: -1, j: -1}
	}
}

// Snapshot is an opaque, independently-mutable capture of a List's full
// state, restorable with Restore.
type Snapshot struct {
	cur        int
	entries    []entry
	membership *matrix.Dense[bool]
}

// Snapshot captures the list's full state so the driver can roll back the
// tabu memory when restoring the best-known permutation.
func (l *List) Snapshot() Snapshot {
	return Snapshot{
		cur:        l.cur,
		entries:    append([]entry(nil), l.entries...),
		membership: l.membership.Clone(),
	}
}

// Restore replaces the list's state with a previously captured Snapshot.
func (l *List) Restore(s Snapshot) {
	l.cur = s.cur
	l.entries = append([]entry(nil), s.entries...)
	l.membership = s.membership.Clone()
}
