package search

import (
	"testing"

	"github.com/NmadeleiDev/gomoku/internal/board"
	"github.com/NmadeleiDev/gomoku/internal/eval"
)

func TestCandidatesEmptyBoardIsCenterSeed(t *testing.T) {
	b := board.Empty()
	ev := eval.NewEvaluator()

	out := Candidates(b, board.Black, ev, true)
	if len(out) != len(board.CenterSeed()) {
		t.Fatalf("expected %d candidates on an empty board, got %d", len(board.CenterSeed()), len(out))
	}

	seen := make(map[board.Point]bool)
	for _, s := range out {
		seen[s.Move] = true
	}
	for _, p := range board.CenterSeed() {
		if !seen[p] {
			t.Errorf("expected center seed point %v among candidates", p)
		}
	}
}

func TestCandidatesMaximizerOrdersDescending(t *testing.T) {
	b := board.Empty()
	var err error
	b, err = b.Apply(9, 9, board.Black, nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	ev := eval.NewEvaluator()

	out := Candidates(b, board.Black, ev, true)
	for i := 1; i < len(out); i++ {
		if out[i].Score > out[i-1].Score {
			t.Fatalf("maximizer candidates must be sorted descending by score: index %d (%v) > index %d (%v)",
				i, out[i].Score, i-1, out[i-1].Score)
		}
	}
}

func TestCandidatesMinimizerOrdersAscending(t *testing.T) {
	b := board.Empty()
	var err error
	b, err = b.Apply(9, 9, board.Black, nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	ev := eval.NewEvaluator()

	out := Candidates(b, board.White, ev, false)
	for i := 1; i < len(out); i++ {
		if out[i].Score < out[i-1].Score {
			t.Fatalf("minimizer candidates must be sorted ascending by score: index %d (%v) < index %d (%v)",
				i, out[i].Score, i-1, out[i-1].Score)
		}
	}
}

func TestCandidatesTruncatesToForcedRefutation(t *testing.T) {
	b := board.Empty()
	var err error
	for x := 0; x < 4; x++ {
		b, err = b.Apply(x, 0, board.Black, nil)
		if err != nil {
			t.Fatalf("setup Apply failed: %v", err)
		}
	}
	ev := eval.NewEvaluator()

	out := Candidates(b, board.Black, ev, true)
	if len(out) != 1 {
		t.Fatalf("expected a single forced winning move to truncate the candidate set, got %d", len(out))
	}
	if out[0].Score != eval.Inf {
		t.Errorf("expected the truncated candidate's score to be +Inf, got %v", out[0].Score)
	}
}

func TestCandidatesExcludesDoubleFreeThreeMoves(t *testing.T) {
	// candidateMoves proposes empty adjacent cells; Candidates must silently
	// drop any that board.Apply rejects (e.g. ErrDoubleFreeThree) rather than
	// surfacing the error.
	b := board.Empty()
	var err error
	for i := 0; i < 8; i++ {
		b, err = b.Apply(i, 0, board.Black, nil)
		if err != nil {
			t.Fatalf("setup move %d failed: %v", i, err)
		}
		b, err = b.Apply(i, 1, board.White, nil)
		if err != nil {
			t.Fatalf("setup move %d failed: %v", i, err)
		}
	}

	ev := eval.NewEvaluator()
	out := Candidates(b, board.Black, ev, true)
	for _, s := range out {
		if s.Board == nil {
			t.Errorf("candidate %v carries a nil successor board", s.Move)
		}
	}
}
