package scan

import (
	"testing"

	"github.com/NmadeleiDev/gomoku/internal/board"
)

func TestWindowsCountsRowsColumnsAndDiagonals(t *testing.T) {
	b := board.Empty()
	windows := Windows(b, 5)

	n := board.Size
	span := n - 5 + 1
	wantTotal := n*span*2 + span*span*2 // rows+cols, main+anti diagonals

	gotTotal := 0
	for _, wc := range windows {
		gotTotal += wc.Count
	}
	if gotTotal != wantTotal {
		t.Errorf("total window occurrences = %d, want %d", gotTotal, wantTotal)
	}

	// The all-empty board has exactly one distinct window (all Empty).
	if len(windows) != 1 {
		t.Errorf("expected exactly 1 distinct window on an empty board, got %d", len(windows))
	}
}

func TestWindowsDedupesByContent(t *testing.T) {
	b := board.Empty()
	var err error
	b, err = b.Apply(0, 0, board.Black, nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	windows := Windows(b, 5)

	var sawOneBlack bool
	for _, wc := range windows {
		count := 0
		for _, c := range wc.Window {
			if c == board.Black {
				count++
			}
		}
		if count == 1 {
			sawOneBlack = true
			if wc.Count < 1 {
				t.Errorf("window with a single Black stone must have Count >= 1, got %d", wc.Count)
			}
		}
	}
	if !sawOneBlack {
		t.Errorf("expected at least one distinct window containing exactly one Black stone")
	}
}

func TestWindowsEmptyForOversizedLength(t *testing.T) {
	b := board.Empty()
	windows := Windows(b, board.Size+1)
	if len(windows) != 0 {
		t.Errorf("expected no windows when length exceeds board.Size, got %d", len(windows))
	}
}

func TestWindowKeyDistinguishesOrder(t *testing.T) {
	a := Window{board.Black, board.White, board.Empty, board.Empty, board.Empty}
	b := Window{board.White, board.Black, board.Empty, board.Empty, board.Empty}
	if a.key() == b.key() {
		t.Errorf("windows with different stone order must not share a dedup key")
	}
}

func TestWindowKeySameContentSameKey(t *testing.T) {
	a := Window{board.Black, board.Empty, board.Empty, board.Empty, board.Empty}
	b := Window{board.Black, board.Empty, board.Empty, board.Empty, board.Empty}
	if a.key() != b.key() {
		t.Errorf("windows with identical content must share a dedup key")
	}
}
