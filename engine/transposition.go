package engine

import (
	cm "github.com/Jbuxofplenty/coral-clash-sub003/coralmg"
)

const (
	// Bound flags
	AlphaFlag int8 = iota // upper bound: search failed low
	BetaFlag              // lower bound: search failed high
	ExactFlag

	// Default capacity; one table lives exactly as long as one search call.
	ttMaxEntries = 1 << 20

	// Fraction of the table dropped (denominator) when capacity is hit.
	ttEvictDivisor = 4
)

// TTEntry caches one searched position.
type TTEntry struct {
	Hash  uint64
	Depth int8
	Move  cm.Move
	Score int32
	Flag  int8
}

// TransTable is a bounded position cache keyed by zobrist hash. It is scoped
// to one search invocation; eviction is deliberately crude (drop a fixed
// fraction in arbitrary order) because the table never outlives the call.
type TransTable struct {
	entries    map[uint64]TTEntry
	maxEntries int
}

func newTransTable(maxEntries int) *TransTable {
	if maxEntries <= 0 {
		maxEntries = ttMaxEntries
	}
	return &TransTable{
		entries:    make(map[uint64]TTEntry, 1<<14),
		maxEntries: maxEntries,
	}
}

// probe returns the cached entry for hash, if any. Hash collisions are an
// accepted risk: a stale hit can only mis-order or shortcut the search, never
// legalize a move.
func (tt *TransTable) probe(hash uint64) (TTEntry, bool) {
	entry, ok := tt.entries[hash]
	return entry, ok
}

// store caches a search result. An existing entry is only overwritten by an
// equal or deeper search. Mate scores are normalized by ply so that they are
// independent of where in the tree the entry was created.
func (tt *TransTable) store(hash uint64, depth int8, ply int, move cm.Move, score int32, flag int8) {
	if prev, ok := tt.entries[hash]; ok && prev.Depth > depth {
		return
	}

	if len(tt.entries) >= tt.maxEntries {
		tt.evict()
	}

	if score > MateScore {
		score += int32(ply)
	} else if score < -MateScore {
		score -= int32(ply)
	}

	tt.entries[hash] = TTEntry{
		Hash:  hash,
		Depth: depth,
		Move:  move,
		Score: score,
		Flag:  flag,
	}
}

// evict drops roughly a quarter of the entries. Map iteration order is
// arbitrary, which is exactly the eviction policy we want.
func (tt *TransTable) evict() {
	drop := tt.maxEntries / ttEvictDivisor
	if drop < 1 {
		drop = 1
	}
	for hash := range tt.entries {
		delete(tt.entries, hash)
		drop--
		if drop == 0 {
			break
		}
	}
}

// scoreFromTT undoes the ply normalization applied by store.
func scoreFromTT(score int32, ply int) int32 {
	if score > MateScore {
		return score - int32(ply)
	}
	if score < -MateScore {
		return score + int32(ply)
	}
	return score
}
