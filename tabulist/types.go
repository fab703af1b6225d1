// Package tabulist provides a fixed-capacity circular memory of recently
// used swap keys with O(1) membership test and randomized aging (prune),
// used by the search driver to forbid cycling back through recently
// applied moves.
package tabulist

import (
	"errors"
	"math/rand"

	"github.com/rcpsp-go/rcpsp/matrix"
)

// ErrCapacity is returned by New when capacity is non-positive.
var ErrCapacity = errors.New("tabulist: capacity must be >= 1")

// entry is one circular-buffer slot. An empty slot has i == j == -1.
type entry struct {
	i, j int
}

func (e entry) empty() bool { return e.i < 0 || e.j < 0 }

// List is the tabu memory: a circular buffer of up to capacity entries and
// a dense N×N membership bitset, kept in sync on every insert/evict/prune.
type List struct {
	n, capacity int
	cur         int
	entries     []entry
	membership  *matrix.Dense[bool]
	rng         *rand.Rand
}

// New allocates a List for n activities with the given fixed capacity.
// The entry membership bitset is N×N; activity ids must lie in [0, n).
func New(n, capacity int) (*List, error) {
	if capacity < 1 {
		return nil, ErrCapacity
	}
	membership, err := matrix.NewDense[bool](n, n)
	if err != nil {
		return nil, err
	}

	entries := make([]entry, capacity)
	for i := range entries {
		entries[i] = entry{i: -1, j: -1}
	}

	return &List{
		n:          n,
		capacity:   capacity,
		entries:    entries,
		membership: membership,
		rng:        rand.New(rand.NewSource(1)),
	}, nil
}

// Reseed replaces the list's random source, used by a walker to derive a
// deterministic per-walker prune stream instead of relying on a shared,
// non-reproducible global generator.
func (l *List) Reseed(rng *rand.Rand) { l.rng = rng }

func normalize(i, j int) (int, int) {
	if i <= j {
		return i, j
	}

	return j, i
}
