// Package search implements the candidate generator (C5) and the
// alpha-beta minimax search with transposition memoization (C6) from
// spec.md §4.5-§4.6.
package search

import "github.com/NmadeleiDev/gomoku/internal/board"

// ttKey is the transposition table key: (board_hash, depth, is_max)
// (spec.md §4.6). This is a plain Go map keyed by the full 128-bit hash:
// spec.md requires the hash be wide enough that collisions are
// "effectively impossible", so there is no replacement policy to get
// right, and the table is scoped to a single turn rather than sized in MB.
type ttKey struct {
	lo, hi uint64
	depth  int
	isMax  bool
}

// ttValue is the memoized (score, move) pair for a key.
type ttValue struct {
	score float64
	move  board.Point
}

// TranspositionTable memoizes minimax results for one in-flight search
// (spec.md §4.6, §5: "private to a single in-flight search").
type TranspositionTable struct {
	entries map[ttKey]ttValue
}

// NewTranspositionTable returns an empty table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make(map[ttKey]ttValue)}
}

// Probe looks up (hash, depth, isMax). Returns the stored (score, move) and
// true if present.
func (tt *TranspositionTable) Probe(hash board.Hash128, depth int, isMax bool) (float64, board.Point, bool) {
	v, ok := tt.entries[ttKey{lo: hash.Lo, hi: hash.Hi, depth: depth, isMax: isMax}]
	if !ok {
		return 0, board.Point{}, false
	}
	return v.score, v.move, true
}

// Store records (score, move) for (hash, depth, isMax). Entries are never
// evicted within a search; the table's lifetime is bounded by the number of
// unique positions explored in one turn (spec.md §4.6).
func (tt *TranspositionTable) Store(hash board.Hash128, depth int, isMax bool, score float64, move board.Point) {
	tt.entries[ttKey{lo: hash.Lo, hi: hash.Hi, depth: depth, isMax: isMax}] = ttValue{
		score: score, move: move,
	}
}

// Size returns the number of memoized entries, used for diagnostics.
func (tt *TranspositionTable) Size() int {
	return len(tt.entries)
}
