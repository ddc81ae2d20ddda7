// Package player implements the thin Player driver (C7) around the
// search engine, as a capability set {StartGame, GetMove, EndGame}
// (spec.md §9: "a tagged variant over {Human, AI} composes more clearly
// than inheritance").
package player

import "github.com/NmadeleiDev/gomoku/internal/board"

// Player is the capability set the game loop (C8) speaks to. StartGame and
// EndGame are no-ops for both implementations today; they exist so the
// loop never special-cases on player kind.
type Player interface {
	Color() board.Color
	GetMove(b *board.Board) (board.Point, error)
	StartGame()
	EndGame()
}
