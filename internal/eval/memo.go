package eval

import (
	"github.com/NmadeleiDev/gomoku/internal/board"
	"github.com/NmadeleiDev/gomoku/internal/scan"
)

// Evaluator memoizes board-level scores on (scorer, color, board hash),
// scoped to a single in-flight search (spec.md §5, §9): construct one per
// search rather than sharing it across concurrent callers.
type Evaluator struct {
	cache map[memoKey]float64
}

type memoKey struct {
	scorer byte
	color  board.Color
	toMove board.Color
	lo, hi uint64
}

const (
	scorerCount byte = iota
	scorerCountWithMove
	scorerFreeThree
)

// NewEvaluator returns an Evaluator with an empty memoization cache.
func NewEvaluator() *Evaluator {
	return &Evaluator{cache: make(map[memoKey]float64)}
}

// H computes the board-level scalar Σ over distinct length-5 windows of
// Count(color, w)·occurrences(w) (spec.md §4.4), memoized on
// (color, board hash).
func (e *Evaluator) H(color board.Color, b *board.Board) float64 {
	h := b.Hash()
	key := memoKey{scorer: scorerCount, color: color, lo: h.Lo, hi: h.Hi}
	if v, ok := e.cache[key]; ok {
		return v
	}

	var total float64
	for _, wc := range scan.Windows(b, 5) {
		total += Count(color, wc.Window) * float64(wc.Count)
	}
	e.cache[key] = total
	return total
}

// HWithMove is H computed with the CountWithMove scorer, which additionally
// depends on whose turn it is (spec.md §4.4 "count_with_move").
func (e *Evaluator) HWithMove(color, toMove board.Color, b *board.Board) float64 {
	h := b.Hash()
	key := memoKey{scorer: scorerCountWithMove, color: color, toMove: toMove, lo: h.Lo, hi: h.Hi}
	if v, ok := e.cache[key]; ok {
		return v
	}

	var total float64
	for _, wc := range scan.Windows(b, 5) {
		total += CountWithMove(color, toMove, wc.Window) * float64(wc.Count)
	}
	e.cache[key] = total
	return total
}

// FreeThreeCount sums the free_three scorer for target over every distinct
// length-6 window of b (spec.md §4.4's free-three sum, used by both the
// opening-exempt Move engine check and the candidate filter).
func (e *Evaluator) FreeThreeCount(b *board.Board, target board.Color) float64 {
	h := b.Hash()
	key := memoKey{scorer: scorerFreeThree, color: target, lo: h.Lo, hi: h.Hi}
	if v, ok := e.cache[key]; ok {
		return v
	}

	var total float64
	for _, wc := range scan.Windows(b, 6) {
		total += FreeThree(target, wc.Window) * float64(wc.Count)
	}
	e.cache[key] = total
	return total
}

// Winner returns the unique non-empty color controlling any monochromatic
// length-5 window on b, or board.Empty if there is none (spec.md §4.4's
// `bin` scorer, used for terminal detection by the game loop).
func Winner(b *board.Board) board.Color {
	for _, wc := range scan.Windows(b, 5) {
		if c := Bin(wc.Window); c != board.Empty {
			return c
		}
	}
	return board.Empty
}
