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
	"snake-game/ui"
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

	window, err := ui.OpenWindow(types.ScreenWidth, types.ScreenHeight, types.WindowTitle, cfg.TileSize)
	if err != nil {
		log.Fatalf("open window: %v", err)
	}
	defer window.Close()

	log.Printf("session %s started", g.Session)
	if err := loop.Run(ctx, window, g, loop.NewPacer(cfg.TickInterval)); err != nil {
		window.Close()
		log.Fatalf("session %s: %v", g.Session, err)
	}
	game.LogSummary(g)
}
