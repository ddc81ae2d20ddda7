package player

import "errors"

// ErrInvalidInput is returned when human input is non-numeric or malformed
// (spec.md §7). Handling is identical to ErrOutOfRange: the driver
// re-prompts the same player.
var ErrInvalidInput = errors.New("player: invalid input")

// ErrOutOfRange is returned when a parsed coordinate falls outside
// [0, board.Size) (spec.md §7).
var ErrOutOfRange = errors.New("player: coordinate out of range")

// ErrNoLegalMove signals the InternalAssert class from spec.md §7: the
// search returned no move on a non-terminal board. The game loop treats
// this as fatal rather than re-prompting.
var ErrNoLegalMove = errors.New("player: search returned no legal move")
