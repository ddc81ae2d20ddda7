// Package eval implements the line-pattern evaluator (spec.md §4.4): the
// four window scorers (bin, count, count_with_move, free_three) and the
// board-level scalar H, each memoized on (scorer, color, board hash) as a
// pure function via a plain value-typed cache key rather than a decorator.
package eval

import (
	"math"

	"github.com/NmadeleiDev/gomoku/internal/board"
	"github.com/NmadeleiDev/gomoku/internal/scan"
)

// Inf is the score assigned to a forced win; it stands in for "+∞" so
// arithmetic comparisons (score > alpha, etc.) behave correctly without
// special-casing a sentinel.
const Inf = math.MaxFloat64 / 2

// Bin returns the unique non-empty color if the length-5 window w is
// monochromatic-non-empty, else board.Empty (spec.md §4.4 "Winner").
func Bin(w scan.Window) board.Color {
	var seen board.Color
	for _, c := range w {
		if c == board.Empty {
			continue
		}
		if seen == board.Empty {
			seen = c
		} else if seen != c {
			return board.Empty
		}
	}
	return seen
}

// Count is the `count` scorer from spec.md §4.4: 0 for an empty or mixed
// window, else a signed power-of-Size score for color's perspective.
func Count(color board.Color, w scan.Window) float64 {
	present, k := windowContents(w)
	if present == board.Empty {
		return 0
	}
	sign := -1.0
	if present == color {
		sign = 1.0
	}
	return sign * windowScore(k)
}

// CountWithMove is the `count_with_move` scorer from spec.md §4.4: an open
// three, a four with an open end, or a five is an immediate forced win for
// the side to move; for the side not to move only a five or an any-open
// four counts. Otherwise it falls back to Count.
func CountWithMove(color board.Color, toMove board.Color, w scan.Window) float64 {
	present, k := windowContents(w)
	if present == board.Empty {
		return 0
	}

	isColorLine := present == color
	n := len(w)
	openBothEnds := w[0] == board.Empty && w[n-1] == board.Empty
	openEitherEnd := w[0] == board.Empty || w[n-1] == board.Empty

	forced := false
	if isColorLine == (color == toMove) {
		switch {
		case k == 3 && openBothEnds:
			forced = true
		case k == 4 && openEitherEnd:
			forced = true
		case k == 5:
			forced = true
		}
	} else {
		if k == 5 || (k == 4 && openEitherEnd) {
			forced = true
		}
	}

	sign := -1.0
	if isColorLine {
		sign = 1.0
	}
	if forced {
		return sign * Inf
	}
	return sign * windowScore(k)
}

// FreeThree is the `free_three` scorer from spec.md §4.4: on a length-6
// window, both endpoints must be empty and the inner 4 cells only
// {target, empty}. A full open three (both inner-edge cells are target)
// scores 1; a half-open three scores 0.5; anything else scores 0.
func FreeThree(target board.Color, w scan.Window) float64 {
	n := len(w)
	if n != 6 {
		return 0
	}
	if w[0] != board.Empty || w[n-1] != board.Empty {
		return 0
	}

	stones := 0
	for i := 1; i < n-1; i++ {
		switch w[i] {
		case target:
			stones++
		case board.Empty:
		default:
			return 0
		}
	}

	if stones != 3 {
		return 0
	}
	if w[1] == target && w[n-2] == target {
		return 1
	}
	return 0.5
}

// windowContents returns the single present color in w (board.Empty if the
// window is empty or mixed) and the number of stones it holds.
func windowContents(w scan.Window) (board.Color, int) {
	var present board.Color
	count := 0
	for _, c := range w {
		if c == board.Empty {
			continue
		}
		if present == board.Empty {
			present = c
		} else if present != c {
			return board.Empty, 0
		}
		count++
	}
	if count == 0 {
		return board.Empty, 0
	}
	return present, count
}

// windowScore returns Size^k for k < 5, else Inf (spec.md §4.4: "score =
// 19^k when k < 5, else +∞").
func windowScore(k int) float64 {
	if k >= 5 {
		return Inf
	}
	return math.Pow(float64(board.Size), float64(k))
}
