package ui

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/NmadeleiDev/gomoku/internal/board"
	"github.com/NmadeleiDev/gomoku/internal/game"
)

const hudFontSize = 14.0

var hudFace *text.GoTextFace

func init() {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("[ui] failed to load HUD font, score overlay disabled: %v", err)
		return
	}
	hudFace = &text.GoTextFace{Source: source, Size: hudFontSize}
}

// hudText renders the last-step scoreline shown below the board in the
// visual driver, mirroring what PrintStep writes to the terminal.
func hudText(s game.Step, hasStep bool) string {
	if !hasStep {
		return "waiting for the first move"
	}
	return fmt.Sprintf("%s played (%d, %d) · scores X=%.1f O=%.1f · captures X=%d O=%d",
		playerGlyph[s.Color], s.Move.X, s.Move.Y,
		s.Scores[board.Black], s.Scores[board.White],
		2*s.Captures[board.Black], 2*s.Captures[board.White])
}
