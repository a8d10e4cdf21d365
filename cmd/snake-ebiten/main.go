// Command snake-ebiten plays the game in an ebiten window.
package main

import (
	"log"

	"snake-game/game"
	"snake-game/game/types"
	"snake-game/ui/ebitenui"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("snake: ")

	cfg := types.DefaultConfig()
	g, err := game.NewGame(cfg, nil)
	if err != nil {
		log.Fatalf("new game: %v", err)
	}

	log.Printf("session %s started", g.Session)
	app := ebitenui.NewApp(g, types.ScreenWidth, types.ScreenHeight, cfg.TileSize)
	if err := app.Run(types.WindowTitle, cfg.TickInterval); err != nil {
		log.Fatalf("session %s: %v", g.Session, err)
	}
	game.LogSummary(g)
}
