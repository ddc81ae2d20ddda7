package board

import "errors"

// Error taxonomy for move application. C2/C4 never log (spec.md §7); they
// only return these values, or a resulting Board.
var (
	// ErrIllegalMove covers an off-board cell and a non-empty cell
	// (spec.md §4.2); a double-free-three violation is reported as
	// ErrDoubleFreeThree.
	ErrIllegalMove = errors.New("board: illegal move")

	// ErrDoubleFreeThree is returned instead of ErrIllegalMove when the
	// rejection is specifically the double-free-three rule (spec.md §4.5);
	// it is handled identically to ErrIllegalMove by the game loop.
	ErrDoubleFreeThree = errors.New("board: move creates a double free three")
)
