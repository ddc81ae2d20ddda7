// Package game implements the suspendable game iterator (C8): it
// alternates players, enforces re-prompt-on-illegal-move, and detects
// terminal state.
package game

import (
	"errors"
	"log"
	"time"

	"github.com/NmadeleiDev/gomoku/internal/board"
	"github.com/NmadeleiDev/gomoku/internal/eval"
	"github.com/NmadeleiDev/gomoku/internal/player"
)

// WinThreshold is the capture count that ends the game for a color
// (spec.md §3, §4.8).
const WinThreshold = 5

// Step is one ply's outcome. Terminal is set once WinThreshold or a
// five-in-a-row is reached; Winner is meaningful only when Terminal is
// true.
type Step struct {
	Color       board.Color
	Move        board.Point
	Elapsed     time.Duration
	MeanElapsed time.Duration
	Scores      map[board.Color]float64
	Captures    map[board.Color]int
	Terminal    bool
	Winner      board.Color
}

// Game drives alternating plies between two players over a single Board
// (spec.md §4.8). It is the "suspendable iterator" spec.md §5 describes:
// Step advances exactly one ply (with internal re-prompting on illegal
// input) and returns; the host calls Step repeatedly. The terminal driver
// calls it synchronously until the game ends; the visual driver
// (internal/ui) calls it in a loop on a background goroutine, not from the
// Ebitengine tick.
type Game struct {
	board   *board.Board
	players [2]player.Player
	active  int
	moveIdx int

	eval    *eval.Evaluator
	timers  map[board.Color][]time.Duration
	started bool
}

// New returns a Game with a fresh empty board and the two players in
// play order (spec.md §4.8: "starting with color +1").
func New(p1, p2 player.Player) *Game {
	return &Game{
		board:   board.Empty(),
		players: [2]player.Player{p1, p2},
		eval:    eval.NewEvaluator(),
		timers:  map[board.Color][]time.Duration{p1.Color(): nil, p2.Color(): nil},
	}
}

// Board returns the current position.
func (g *Game) Board() *board.Board { return g.board }

// Step plays exactly one ply: it asks the active player for a move,
// retries on IllegalMove/InvalidInput/OutOfRange without advancing
// move_idx, applies the move via the Move engine on success, and checks
// termination (spec.md §4.8).
func (g *Game) Step() (Step, error) {
	if !g.started {
		g.players[0].StartGame()
		g.players[1].StartGame()
		g.started = true
	}

	active := g.players[g.active]

	for {
		start := time.Now()
		move, err := active.GetMove(g.board)
		if err != nil {
			if errors.Is(err, player.ErrNoLegalMove) {
				// InternalAssert class (spec.md §7): the search found no move
				// on a non-terminal board. Fatal, not a re-prompt.
				log.Fatalf("[Game] player %s: %v", active.Color(), err)
			}
			log.Printf("[Game] player %s: %v, retry", active.Color(), err)
			continue
		}

		nb, err := g.board.Apply(move.X, move.Y, active.Color(), g.eval.FreeThreeCount)
		if err != nil {
			log.Printf("[Game] player %s: move (%d,%d) rejected: %v, retry", active.Color(), move.X, move.Y, err)
			continue
		}

		elapsed := time.Since(start)
		g.timers[active.Color()] = append(g.timers[active.Color()], elapsed)
		g.board = nb
		g.moveIdx++

		step := Step{
			Color:       active.Color(),
			Move:        move,
			Elapsed:     elapsed,
			MeanElapsed: meanDuration(g.timers[active.Color()]),
			Scores:      g.scores(),
			Captures:    map[board.Color]int{board.Black: g.board.Captures(board.Black), board.White: g.board.Captures(board.White)},
		}

		if winner, ok := g.checkTerminal(); ok {
			step.Terminal = true
			step.Winner = winner
			g.players[0].EndGame()
			g.players[1].EndGame()
			log.Printf("[Game] player %s wins after %d plies", winner, g.moveIdx)
			return step, nil
		}

		g.active = (g.active + 1) % 2
		return step, nil
	}
}

// checkTerminal implements spec.md §4.8's two termination checks: capture
// threshold first, then the bin scorer over length-5 windows.
func (g *Game) checkTerminal() (board.Color, bool) {
	for _, c := range [2]board.Color{board.Black, board.White} {
		if g.board.Captures(c) >= WinThreshold {
			return c, true
		}
	}
	if w := eval.Winner(g.board); w != board.Empty {
		return w, true
	}
	return board.Empty, false
}

func (g *Game) scores() map[board.Color]float64 {
	return map[board.Color]float64{
		board.Black: g.eval.H(board.Black, g.board),
		board.White: g.eval.H(board.White, g.board),
	}
}

func meanDuration(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range ds {
		total += d
	}
	return total / time.Duration(len(ds))
}
