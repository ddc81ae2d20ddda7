package ui

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/NmadeleiDev/gomoku/internal/board"
	"github.com/NmadeleiDev/gomoku/internal/game"
)

const (
	cellPixels = 32
	hudHeight  = 24
)

// WindowSize returns the fixed pixel dimensions of the visual driver's
// window: the board grid plus the HUD strip below it.
func WindowSize() (width, height int) {
	return board.Size * cellPixels, board.Size*cellPixels + hudHeight
}

// Mailbox is the single-element human-input channel spec.md §5 describes:
// "Human input is delivered to the driver via a single-element mailbox;
// the game iterator suspends between ticks until the mailbox becomes
// non-empty." It implements player.MoveReader.
type Mailbox struct {
	ch chan string
}

// NewMailbox returns an empty single-slot mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{ch: make(chan string, 1)}
}

// ReadMoveLine blocks until a move is submitted.
func (m *Mailbox) ReadMoveLine() (string, error) {
	return <-m.ch, nil
}

// Submit places a move line in the mailbox, blocking if one is already
// pending (there is at most one active human player per ply).
func (m *Mailbox) Submit(line string) {
	m.ch <- line
}

// VisualGame drives an internal/game.Game through Ebitengine: a
// background goroutine runs Step() to completion (spec.md §5: "suspension
// points only between full plies, never inside minimax"), while Update/Draw
// render the most recently published board and forward mouse clicks into
// the mailbox for whichever ply is waiting on human input.
type VisualGame struct {
	inner   *game.Game
	mailbox *Mailbox
	stones  *StoneSet

	mu       sync.Mutex
	board    *board.Board
	lastStep game.Step
	hasStep  bool
	done     bool
	winner   board.Color
	err      error
}

// NewVisualGame starts g running in a background goroutine and returns a
// VisualGame ready to be passed to ebiten.RunGame.
func NewVisualGame(g *game.Game, mailbox *Mailbox) (*VisualGame, error) {
	stones, err := NewStoneSet(cellPixels - 4)
	if err != nil {
		return nil, err
	}

	vg := &VisualGame{inner: g, mailbox: mailbox, stones: stones, board: g.Board()}
	go vg.run()
	return vg, nil
}

func (vg *VisualGame) run() {
	for {
		step, err := vg.inner.Step()

		vg.mu.Lock()
		vg.board = vg.inner.Board()
		if err == nil {
			vg.lastStep = step
			vg.hasStep = true
		}
		if err != nil {
			vg.err = err
			vg.done = true
		} else if step.Terminal {
			vg.done = true
			vg.winner = step.Winner
		}
		done := vg.done
		vg.mu.Unlock()

		if done {
			log.Printf("[UI] game over")
			return
		}
	}
}

// Update handles one ebiten tick: a left click on an on-board cell is
// submitted to the mailbox if it has room, whether or not a human player
// is waiting on it at that moment.
func (vg *VisualGame) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x := mx / cellPixels
		y := my / cellPixels
		if board.OnBoard(x, y) {
			select {
			case vg.mailbox.ch <- fmt.Sprintf("%d %d", x, y):
			default:
				// Mailbox already has a pending move; the click is simply
				// dropped. A click taken while no human player is waiting
				// stays in the mailbox and is read by the next human move.
			}
		}
	}
	return nil
}

// Draw renders the grid and every placed stone from the last published
// board snapshot.
func (vg *VisualGame) Draw(screen *ebiten.Image) {
	vg.mu.Lock()
	b := vg.board
	step := vg.lastStep
	hasStep := vg.hasStep
	done := vg.done
	winner := vg.winner
	vg.mu.Unlock()

	screen.Fill(color.RGBA{0xdc, 0xb3, 0x5c, 0xff})

	gridColor := color.RGBA{0x30, 0x20, 0x10, 0xff}
	for i := 0; i < board.Size; i++ {
		pos := float32(i*cellPixels) + cellPixels/2
		span := float32(board.Size*cellPixels) - cellPixels
		vector.StrokeLine(screen, cellPixels/2, pos, cellPixels/2+span, pos, 1, gridColor, false)
		vector.StrokeLine(screen, pos, cellPixels/2, pos, cellPixels/2+span, 1, gridColor, false)
	}

	for x := 0; x < board.Size; x++ {
		for y := 0; y < board.Size; y++ {
			c := b.At(x, y)
			if c == board.Empty {
				continue
			}
			img := vg.stones.Image(c)
			opt := &ebiten.DrawImageOptions{}
			opt.GeoM.Translate(float64(x*cellPixels+2), float64(y*cellPixels+2))
			screen.DrawImage(img, opt)
		}
	}

	if done {
		ebiten.SetWindowTitle(fmt.Sprintf("gomoku - %s wins", winner))
	}

	drawHUD(screen, board.Size*cellPixels, hudText(step, hasStep))
}

// drawHUD writes s in the strip below the board, using the shared HUD font
// face (empty if the font failed to load, in which case drawHUD is a no-op).
func drawHUD(screen *ebiten.Image, boardPixels int, s string) {
	if hudFace == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(4, float64(boardPixels)+4)
	op.ColorScale.ScaleWithColor(color.RGBA{0x20, 0x10, 0x05, 0xff})
	text.Draw(screen, s, hudFace, op)
}

// Layout returns the fixed board window size plus the HUD strip.
func (vg *VisualGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := board.Size * cellPixels
	return size, size + hudHeight
}

// Result reports whether the game has ended and, if so, its winner and any
// error the iterator terminated with.
func (vg *VisualGame) Result() (done bool, winner board.Color, err error) {
	vg.mu.Lock()
	defer vg.mu.Unlock()
	return vg.done, vg.winner, vg.err
}
