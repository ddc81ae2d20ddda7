// Package ui implements the two gameplay drivers named in spec.md §6: a
// terminal text renderer and an Ebitengine visual renderer, both driven
// through the C8 suspendable iterator's Step() (internal/game), one file
// per concern.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/NmadeleiDev/gomoku/internal/board"
	"github.com/NmadeleiDev/gomoku/internal/game"
)

const movePrompt = "Type X and Y coordinates of the move (must be from 0 to 18) :: "

// StdinReader reads "x y" lines from os.Stdin, implementing
// player.MoveReader for HumanPlayer (spec.md §6's terminal I/O contract).
type StdinReader struct {
	scanner *bufio.Scanner
}

// NewStdinReader returns a StdinReader over os.Stdin.
func NewStdinReader() *StdinReader {
	return &StdinReader{scanner: bufio.NewScanner(os.Stdin)}
}

// ReadMoveLine prints the move prompt and returns the next line of input.
func (r *StdinReader) ReadMoveLine() (string, error) {
	fmt.Print(movePrompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// RenderBoard renders b as a 19-row, 19-column table with row/column
// headers (spec.md §6).
func RenderBoard(b *board.Board) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for x := 0; x < board.Size; x++ {
		fmt.Fprintf(&sb, "%2d", x)
	}
	sb.WriteByte('\n')

	for y := 0; y < board.Size; y++ {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := 0; x < board.Size; x++ {
			fmt.Fprintf(&sb, " %s", b.At(x, y).String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

var playerGlyph = map[board.Color]string{board.Black: "X", board.White: "O"}

// PrintStep writes the per-ply report spec.md §6 requires: coordinates
// played, time spent, running mean move time, per-color scores, and
// per-color capture counts shown as stone count (2 * captures[c]),
// mirroring TerminalGameplay.print_info_after_move in the original.
func PrintStep(s game.Step) {
	fmt.Printf("\nPlayer %q played (%d, %d) after %v (mean %v for this player)\n",
		playerGlyph[s.Color], s.Move.X, s.Move.Y, s.Elapsed, s.MeanElapsed)

	fmt.Printf("Scores: X=%.2f O=%.2f\n", s.Scores[board.Black], s.Scores[board.White])
	fmt.Printf("Captures: X=%d O=%d\n", 2*s.Captures[board.Black], 2*s.Captures[board.White])
}
