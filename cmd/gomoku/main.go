// Command gomoku plays the capture/double-free-three Gomoku variant
// between any combination of human and AI players, in either a terminal
// or an Ebitengine visual session (spec.md §6).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/NmadeleiDev/gomoku/internal/board"
	"github.com/NmadeleiDev/gomoku/internal/game"
	"github.com/NmadeleiDev/gomoku/internal/player"
	"github.com/NmadeleiDev/gomoku/internal/storage"
	"github.com/NmadeleiDev/gomoku/internal/ui"
)

func main() {
	player1 := flag.String("player1", "human", "player 1 kind: human|ai")
	player2 := flag.String("player2", "ai", "player 2 kind: human|ai")
	gameplay := flag.String("gameplay", "terminal", "gameplay driver: terminal|visual")
	flag.Parse()

	depth := player.DepthFromEnv()

	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("[gomoku] storage unavailable, running without persistence: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	var mailbox *ui.Mailbox
	if *gameplay == "visual" {
		mailbox = ui.NewMailbox()
	}

	p1, err := buildPlayer(*player1, board.Black, depth, mailbox)
	if err != nil {
		log.Fatalf("[gomoku] --player1: %v", err)
	}
	p2, err := buildPlayer(*player2, board.White, depth, mailbox)
	if err != nil {
		log.Fatalf("[gomoku] --player2: %v", err)
	}

	g := game.New(p1, p2)

	var winner board.Color

	switch *gameplay {
	case "terminal":
		winner, err = runTerminal(g, store)
	case "visual":
		winner, err = runVisual(g, mailbox)
	default:
		log.Fatalf("[gomoku] unknown --gameplay=%q", *gameplay)
	}

	if err != nil {
		log.Printf("[gomoku] game ended with error: %v", err)
		os.Exit(1)
	}

	if store != nil {
		won := (*player1 == "human" && winner == board.Black) || (*player2 == "human" && winner == board.White)
		_ = store.RecordGame(storage.GameResult{Won: won, Mode: modeFor(*player1, *player2), Difficulty: difficultyFor(depth)})
	}

	fmt.Printf("winner: %s\n", winner)
	os.Exit(0)
}

func buildPlayer(kind string, color board.Color, depth int, mailbox *ui.Mailbox) (player.Player, error) {
	switch kind {
	case "ai":
		return player.NewAIPlayer(color, depth), nil
	case "human":
		var reader player.MoveReader
		if mailbox != nil {
			reader = mailbox
		} else {
			reader = ui.NewStdinReader()
		}
		return player.NewHumanPlayer(color, reader), nil
	default:
		return nil, fmt.Errorf("unknown player kind %q (want human|ai)", kind)
	}
}

func difficultyFor(depth int) storage.Difficulty {
	switch {
	case depth <= 1:
		return storage.DifficultyEasy
	case depth >= 5:
		return storage.DifficultyHard
	default:
		return storage.DifficultyMedium
	}
}

func modeFor(p1, p2 string) storage.GameMode {
	switch {
	case p1 == "human" && p2 == "human":
		return storage.ModeHumanVsHuman
	case p1 == "ai" && p2 == "ai":
		return storage.ModeComputerVsComputer
	default:
		return storage.ModeHumanVsComputer
	}
}

func runTerminal(g *game.Game, store *storage.Storage) (board.Color, error) {
	fmt.Println(ui.RenderBoard(g.Board()))

	for {
		step, err := g.Step()
		if err != nil {
			return board.Empty, err
		}

		fmt.Println(ui.RenderBoard(g.Board()))
		ui.PrintStep(step)

		if store != nil {
			if err := store.SaveSnapshot(g.Board()); err != nil {
				log.Printf("[gomoku] snapshot failed: %v", err)
			}
		}

		if step.Terminal {
			fmt.Printf("Game finished, %s won!\n", step.Winner)
			return step.Winner, nil
		}
	}
}

func runVisual(g *game.Game, mailbox *ui.Mailbox) (board.Color, error) {
	vg, err := ui.NewVisualGame(g, mailbox)
	if err != nil {
		return board.Empty, err
	}

	w, h := ui.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("gomoku")

	if err := ebiten.RunGame(vg); err != nil {
		return board.Empty, err
	}

	_, winner, err := vg.Result()
	return winner, err
}
