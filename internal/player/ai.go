package player

import (
	"os"
	"strconv"

	"github.com/NmadeleiDev/gomoku/internal/board"
	"github.com/NmadeleiDev/gomoku/internal/eval"
	"github.com/NmadeleiDev/gomoku/internal/search"
)

// DefaultDepth is used when DEPTH is unset or unparsable (spec.md §6).
const DefaultDepth = 3

// DepthFromEnv reads the DEPTH environment variable, falling back to
// DefaultDepth (spec.md §6).
func DepthFromEnv() int {
	v := os.Getenv("DEPTH")
	if v == "" {
		return DefaultDepth
	}
	d, err := strconv.Atoi(v)
	if err != nil || d <= 0 {
		return DefaultDepth
	}
	return d
}

// AIPlayer drives the search engine for one color (spec.md §4.7).
type AIPlayer struct {
	color    board.Color
	opponent board.Color
	depth    int
}

// NewAIPlayer returns an AIPlayer for color, searching to depth.
func NewAIPlayer(color board.Color, depth int) *AIPlayer {
	return &AIPlayer{color: color, opponent: color.Other(), depth: depth}
}

func (p *AIPlayer) Color() board.Color { return p.color }

// GetMove invokes a fresh search with the maximizer set to p's color, the
// configured depth, and initial bounds (−∞, +∞) (spec.md §4.7). The
// evaluator and transposition table are scoped to this single call, never
// reused across turns (spec.md §5).
func (p *AIPlayer) GetMove(b *board.Board) (board.Point, error) {
	s := search.NewSearcher()
	result := s.Search(true, p.depth, -eval.Inf, eval.Inf, p.color, p.opponent, b)
	if !result.HasMove {
		// Every candidate was exhausted or pruned with no legal successor:
		// an invariant violation per spec.md §7's InternalAssert class.
		return board.Point{}, ErrNoLegalMove
	}
	return result.Move, nil
}

func (p *AIPlayer) StartGame() {}
func (p *AIPlayer) EndGame()   {}
