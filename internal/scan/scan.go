// Package scan implements the line scanner (spec.md §4.3): it enumerates
// every length-L window along the four axes (row, column, and both
// diagonals) of a Board and returns the distinct windows with their
// occurrence counts, so the pattern evaluator (internal/eval) can score
// each distinct window once.
package scan

import "github.com/NmadeleiDev/gomoku/internal/board"

// Window is an ordered sample of colors along one axis. Length is 5 for win
// and count scoring, 6 for free-three detection.
type Window []board.Color

// key renders a window as a comparable string so distinct windows can be
// deduplicated in a map via a cheap, value-typed memoization key.
func (w Window) key() string {
	buf := make([]byte, len(w))
	for i, c := range w {
		buf[i] = byte(c) + 1 // shift into a small positive byte range
	}
	return string(buf)
}

// Windows returns every distinct length-L window on b's grid together with
// its occurrence count, scanning rows, columns, and both diagonals.
func Windows(b *board.Board, length int) map[string]WindowCount {
	out := make(map[string]WindowCount)
	add := func(w Window) {
		k := w.key()
		wc, ok := out[k]
		if !ok {
			wc.Window = w
		}
		wc.Count++
		out[k] = wc
	}

	n := board.Size
	span := n - length + 1
	if span <= 0 {
		return out
	}

	// Rows and columns.
	for i := 0; i < n; i++ {
		for j := 0; j < span; j++ {
			row := make(Window, length)
			col := make(Window, length)
			for k := 0; k < length; k++ {
				row[k] = b.At(i, j+k)
				col[k] = b.At(j+k, i)
			}
			add(row)
			add(col)
		}
	}

	// Main diagonal (slope +1) and anti-diagonal (slope -1), anchored at
	// every on-board top-left / top-right starting cell.
	for i := 0; i < span; i++ {
		for j := 0; j < span; j++ {
			main := make(Window, length)
			anti := make(Window, length)
			for k := 0; k < length; k++ {
				main[k] = b.At(i+k, j+k)
				anti[k] = b.At(i+k, j+length-1-k)
			}
			add(main)
			add(anti)
		}
	}

	return out
}

// WindowCount pairs a distinct window with how many times it occurs.
type WindowCount struct {
	Window Window
	Count  int
}
