// Command snake-term plays the game inside a terminal.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snake-game/game"
	"snake-game/game/loop"
	"snake-game/game/types"
	"snake-game/ui/terminal"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("snake: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := types.DefaultConfig()
	g, err := game.NewGame(cfg, nil)
	if err != nil {
		log.Fatalf("new game: %v", err)
	}

	screen, err := terminal.Open()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}

	// the screen owns stderr until Close, so log only afterwards
	runErr := loop.Run(ctx, screen, g, loop.NewPacer(cfg.TickInterval))
	screen.Close()
	if runErr != nil {
		log.Fatalf("session %s: %v", g.Session, runErr)
	}
	game.LogSummary(g)
}
