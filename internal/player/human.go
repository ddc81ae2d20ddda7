package player

import (
	"strconv"
	"strings"

	"github.com/NmadeleiDev/gomoku/internal/board"
)

// MoveReader supplies one "x y" line of human input per call, e.g. a
// bufio.Scanner over stdin in the terminal driver, or a single-element
// mailbox drained by the GUI driver (spec.md §5).
type MoveReader interface {
	ReadMoveLine() (string, error)
}

// HumanPlayer parses coordinates out of whatever MoveReader the driver
// wires in; legality (occupied cell, double-free-three) is enforced by
// the game loop via the Move engine, not here (spec.md §4.7).
type HumanPlayer struct {
	color  board.Color
	reader MoveReader
}

// NewHumanPlayer returns a HumanPlayer for color, reading moves from r.
func NewHumanPlayer(color board.Color, r MoveReader) *HumanPlayer {
	return &HumanPlayer{color: color, reader: r}
}

func (p *HumanPlayer) Color() board.Color { return p.color }

// GetMove reads one line, expecting two whitespace-separated non-negative
// integers in [0, board.Size) (spec.md §6). Malformed input yields
// ErrInvalidInput; two integers with either one outside that range yield
// ErrOutOfRange.
func (p *HumanPlayer) GetMove(_ *board.Board) (board.Point, error) {
	line, err := p.reader.ReadMoveLine()
	if err != nil {
		return board.Point{}, ErrInvalidInput
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return board.Point{}, ErrInvalidInput
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return board.Point{}, ErrInvalidInput
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return board.Point{}, ErrInvalidInput
	}

	if x < 0 || x >= board.Size || y < 0 || y >= board.Size {
		return board.Point{}, ErrOutOfRange
	}

	return board.Point{X: x, Y: y}, nil
}

func (p *HumanPlayer) StartGame() {}
func (p *HumanPlayer) EndGame()   {}
