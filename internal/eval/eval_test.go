package eval

import (
	"testing"

	"github.com/NmadeleiDev/gomoku/internal/board"
	"github.com/NmadeleiDev/gomoku/internal/scan"
)

func win(c board.Color) scan.Window {
	return scan.Window{c, c, c, c, c}
}

func TestBin(t *testing.T) {
	if got := Bin(win(board.Black)); got != board.Black {
		t.Errorf("Bin(all Black) = %v, want Black", got)
	}
	mixed := scan.Window{board.Black, board.Black, board.White, board.Empty, board.Empty}
	if got := Bin(mixed); got != board.Empty {
		t.Errorf("Bin(mixed) = %v, want Empty", got)
	}
	allEmpty := scan.Window{board.Empty, board.Empty, board.Empty, board.Empty, board.Empty}
	if got := Bin(allEmpty); got != board.Empty {
		t.Errorf("Bin(all empty) = %v, want Empty", got)
	}
}

func TestCountSign(t *testing.T) {
	w := scan.Window{board.Black, board.Black, board.Empty, board.Empty, board.Empty}
	if got := Count(board.Black, w); got <= 0 {
		t.Errorf("Count(Black, own line) = %v, want positive", got)
	}
	if got := Count(board.White, w); got >= 0 {
		t.Errorf("Count(White, opponent line) = %v, want negative", got)
	}
}

func TestCountEmptyWindowIsZero(t *testing.T) {
	w := scan.Window{board.Empty, board.Empty, board.Empty, board.Empty, board.Empty}
	if got := Count(board.Black, w); got != 0 {
		t.Errorf("Count of an empty window = %v, want 0", got)
	}
}

func TestCountFiveInARowIsInf(t *testing.T) {
	if got := Count(board.Black, win(board.Black)); got != Inf {
		t.Errorf("Count of a length-5 monochromatic window = %v, want Inf", got)
	}
}

func TestFreeThreeOpenVsHalfOpen(t *testing.T) {
	open := scan.Window{board.Empty, board.Black, board.Black, board.Empty, board.Black, board.Empty}
	if got := FreeThree(board.Black, open); got != 1 {
		t.Errorf("FreeThree(fully open three) = %v, want 1", got)
	}

	halfOpen := scan.Window{board.Empty, board.Empty, board.Black, board.Black, board.Black, board.Empty}
	if got := FreeThree(board.Black, halfOpen); got != 0.5 {
		t.Errorf("FreeThree(half-open three) = %v, want 0.5", got)
	}

	blocked := scan.Window{board.White, board.Black, board.Black, board.Black, board.Empty, board.Empty}
	if got := FreeThree(board.Black, blocked); got != 0 {
		t.Errorf("FreeThree(blocked end) = %v, want 0", got)
	}
}

func TestFreeThreeWrongLengthIsZero(t *testing.T) {
	w := scan.Window{board.Empty, board.Black, board.Black, board.Black, board.Empty}
	if got := FreeThree(board.Black, w); got != 0 {
		t.Errorf("FreeThree on a length-5 window = %v, want 0", got)
	}
}

func TestEvaluatorHIsPureAndMemoized(t *testing.T) {
	b := board.Empty()
	b, err := b.Apply(9, 9, board.Black, nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	ev := NewEvaluator()
	first := ev.H(board.Black, b)
	second := ev.H(board.Black, b)
	if first != second {
		t.Errorf("H must be a pure function of (color, board): %v != %v", first, second)
	}
	if got := len(ev.cache); got != 1 {
		t.Errorf("expected the second H call to hit the memo cache (1 entry), got %d entries", got)
	}
}

func TestWinnerDetectsFiveInARow(t *testing.T) {
	b := board.Empty()
	var err error
	for x := 0; x < 5; x++ {
		b, err = b.Apply(x, 0, board.Black, nil)
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
	}
	if got := Winner(b); got != board.Black {
		t.Errorf("Winner = %v, want Black after five in a row", got)
	}
}

func TestWinnerEmptyBoard(t *testing.T) {
	if got := Winner(board.Empty()); got != board.Empty {
		t.Errorf("Winner(empty board) = %v, want Empty", got)
	}
}
