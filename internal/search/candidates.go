package search

import (
	"sort"

	"github.com/NmadeleiDev/gomoku/internal/board"
	"github.com/NmadeleiDev/gomoku/internal/eval"
)

// Successor is a candidate move together with the board it produces and its
// move-ordering score (spec.md §4.5).
type Successor struct {
	Move  board.Point
	Board *board.Board
	Score float64
}

// Candidates returns the legal successors of b for color c, sorted by the
// `count` move-ordering heuristic — descending for the maximizer, ascending
// for the minimizer — and restricted to a forced refutation when the top
// successor already scores ±∞ (spec.md §4.5).
func Candidates(b *board.Board, c board.Color, ev *eval.Evaluator, maximizer bool) []Successor {
	moves := candidateMoves(b)

	out := make([]Successor, 0, len(moves))
	for _, m := range moves {
		var counter board.FreeThreeCounter
		if b.MoveIdx()+1 >= minMoveIdxForFreeThreeCheck {
			counter = ev.FreeThreeCount
		}
		nb, err := b.Apply(m.X, m.Y, c, counter)
		if err != nil {
			// ErrDoubleFreeThree (and any ErrIllegalMove, which should not
			// occur here since moves come from empty cells) is simply
			// excluded from the candidate set, rather than surfaced — the
			// generator is a pure filter over Move engine outcomes.
			continue
		}
		out = append(out, Successor{Move: m, Board: nb, Score: ev.H(c, nb)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if maximizer {
			return out[i].Score > out[j].Score
		}
		return out[i].Score < out[j].Score
	})

	if len(out) > 0 && (out[0].Score == eval.Inf || out[0].Score == -eval.Inf) {
		return out[:1]
	}
	return out
}

// minMoveIdxForFreeThreeCheck mirrors board.Apply's opening exemption
// (spec.md §4.5: "This filter is skipped when move_idx < 8").
const minMoveIdxForFreeThreeCheck = 8

// candidateMoves returns the empty cells adjacent to any occupied cell,
// unioned with the fixed center seed set (spec.md §4.5).
func candidateMoves(b *board.Board) []board.Point {
	seen := make(map[board.Point]bool)
	var out []board.Point

	add := func(p board.Point) {
		if seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}

	for x := 0; x < board.Size; x++ {
		for y := 0; y < board.Size; y++ {
			if b.IsEmpty(x, y) {
				continue
			}
			for _, n := range board.Neighbours(x, y, 1) {
				if b.IsEmpty(n.X, n.Y) {
					add(n)
				}
			}
		}
	}

	for _, p := range board.CenterSeed() {
		if b.IsEmpty(p.X, p.Y) {
			add(p)
		}
	}

	return out
}
