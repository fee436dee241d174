package search

import (
	"sync/atomic"

	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/eval"
)

// Bound records which side of the true score a stored Entry represents: the search window may
// have cut the node off before its exact value was known.
type Bound uint8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

// Entry is one transposition table record.
type Entry struct {
	Fingerprint board.Fingerprint
	Depth       int
	Bound       Bound
	Score       eval.Score
	Move        board.Move
	Age         uint32
}

// TranspositionTable is the interface search depends on, so that a no-op implementation can
// stand in for tests that want move ordering and cutoffs disabled.
type TranspositionTable interface {
	Probe(fp board.Fingerprint) (Entry, bool)
	Store(e Entry)
	NewGeneration()
	Clear()
	Used() int
}

// Table is a fixed-capacity, lock-free transposition table. Each slot is an atomic pointer so
// that concurrent probes never observe a torn write; replacement uses a compare-and-swap loop
// so that two searches racing to store into the same slot never lose the later generation's
// write to the earlier one. Replacement favors deeper, newer entries over shallow, stale ones.
type Table struct {
	slots []atomic.Pointer[Entry]
	mask  uint64
	age   atomic.Uint32
}

const entrySize = 40 // approximate bytes per Entry, for NewTableWithSize's MB->slot conversion.

// NewTable allocates a table with capacity rounded down to a power of two.
func NewTable(numSlots int) *Table {
	n := 1
	for n*2 <= numSlots {
		n *= 2
	}
	if n < 1 {
		n = 1
	}
	return &Table{slots: make([]atomic.Pointer[Entry], n), mask: uint64(n - 1)}
}

// NewTableWithSize allocates a table sized to approximately sizeMB megabytes.
func NewTableWithSize(sizeMB int) *Table {
	return NewTable(sizeMB * 1024 * 1024 / entrySize)
}

func (t *Table) index(fp board.Fingerprint) uint64 {
	return uint64(fp) & t.mask
}

// Probe returns the stored entry for fp, if any and if it is not a fingerprint collision (the
// full fingerprint is compared, not just the index bits).
func (t *Table) Probe(fp board.Fingerprint) (Entry, bool) {
	e := t.slots[t.index(fp)].Load()
	if e == nil || e.Fingerprint != fp {
		return Entry{}, false
	}
	return *e, true
}

// Store writes e into its slot, replacing the current occupant only if e is from the current
// search generation and at least as deep, or if the current occupant is from an older
// generation. This is the standard "depth-preferred, age-aware" replacement policy.
func (t *Table) Store(e Entry) {
	e.Age = t.age.Load()
	slot := &t.slots[t.index(e.Fingerprint)]
	for {
		cur := slot.Load()
		if cur != nil && cur.Age == e.Age && cur.Depth > e.Depth {
			return
		}
		if slot.CompareAndSwap(cur, &e) {
			return
		}
	}
}

// NewGeneration marks the start of a new search (Engine.Analyze calls it before each launch), so that
// Store's replacement policy prefers the new generation's entries over stale ones without
// needing to clear the table outright.
func (t *Table) NewGeneration() {
	t.age.Add(1)
}

// Clear discards every stored entry and resets the generation counter. Unlike NewGeneration,
// which only lets replacement age stale entries out gradually, Clear removes them outright: the
// correct response to a new-game signal, where the old game's entries have no business surviving
// at any age.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i].Store(nil)
	}
	t.age.Store(0)
}

// Used returns the table's occupancy in parts per mille, sampling at most 1000 slots so that
// Used is O(1)-ish even for a large table.
func (t *Table) Used() int {
	n := len(t.slots)
	sample := n
	if sample > 1000 {
		sample = 1000
	}
	used := 0
	for i := 0; i < sample; i++ {
		if t.slots[i*n/sample].Load() != nil {
			used++
		}
	}
	return used * 1000 / sample
}
