package search

import (
	"github.com/NmadeleiDev/gomoku/internal/board"
	"github.com/NmadeleiDev/gomoku/internal/eval"
)

// Searcher runs one alpha-beta minimax search (spec.md §4.6), kept in the
// explicit is_max/max_color/min_color form spec.md §4.6 specifies, rather
// than folded into a single-sign negamax — a color-dependent evaluator
// where H is not antisymmetric between perspectives doesn't admit the
// negamax simplification.
//
// A Searcher is scoped to a single in-flight search: its Evaluator and
// TranspositionTable are private to one turn (spec.md §5), never shared
// across concurrent callers or reused between plies.
type Searcher struct {
	Eval *eval.Evaluator
	TT   *TranspositionTable
}

// NewSearcher returns a Searcher with a fresh evaluator and transposition
// table, ready for one call to Search.
func NewSearcher() *Searcher {
	return &Searcher{Eval: eval.NewEvaluator(), TT: NewTranspositionTable()}
}

// Result is the outcome of a minimax call: a score and, at non-leaf nodes,
// the move that achieves it.
type Result struct {
	Score   float64
	Move    board.Point
	HasMove bool
}

// Search runs minimax(is_max, depth, α, β, max_color, min_color, board) per
// spec.md §4.6's exact contract.
func (s *Searcher) Search(isMax bool, depth int, alpha, beta float64, maxColor, minColor board.Color, b *board.Board) Result {
	mover := minColor
	if isMax {
		mover = maxColor
	}

	if depth == 0 {
		return Result{Score: s.Eval.H(mover, b)}
	}

	hash := b.Hash()
	if score, move, ok := s.TT.Probe(hash, depth, isMax); ok {
		return Result{Score: score, Move: move, HasMove: true}
	}

	successors := Candidates(b, mover, s.Eval, isMax)

	var best Result
	haveBest := false

	for _, succ := range successors {
		child := s.Search(!isMax, depth-1, alpha, beta, maxColor, minColor, succ.Board)

		if !haveBest {
			best = Result{Score: child.Score, Move: succ.Move, HasMove: true}
			haveBest = true
		} else if isMax && child.Score > best.Score {
			best = Result{Score: child.Score, Move: succ.Move, HasMove: true}
		} else if !isMax && child.Score < best.Score {
			best = Result{Score: child.Score, Move: succ.Move, HasMove: true}
		}

		if isMax {
			if child.Score == eval.Inf {
				break
			}
			if child.Score > alpha {
				alpha = child.Score
			}
		} else {
			if child.Score == -eval.Inf {
				break
			}
			if child.Score < beta {
				beta = child.Score
			}
		}

		if beta <= alpha {
			break
		}
	}

	if !haveBest {
		// No legal successors (board full, or every candidate was pruned for
		// double-free-three): score the position as a leaf from the current
		// mover's perspective rather than leaving an undefined best move.
		return Result{Score: s.Eval.H(mover, b)}
	}

	s.TT.Store(hash, depth, isMax, best.Score, best.Move)
	return best
}
