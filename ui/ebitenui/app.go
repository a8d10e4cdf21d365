// Package ebitenui runs the game on ebiten. ebiten owns the main loop, so
// pacing comes from its tick rate instead of a sleep.
package ebitenui

import (
	"image/color"
	"time"

	"snake-game/game"
	"snake-game/game/types"
	"snake-game/ui/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type App struct {
	game     *game.Game
	renderer *layout.Renderer
	width    int
	height   int
}

func NewApp(g *game.Game, width, height, tileSize int) *App {
	return &App{
		game:     g,
		renderer: layout.NewRenderer(tileSize),
		width:    width,
		height:   height,
	}
}

// Run opens the window and blocks until the game terminates
func (a *App) Run(title string, tick time.Duration) error {
	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(int(time.Second / tick))
	return ebiten.RunGame(a)
}

func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.game.HandleInput(game.InputQuit)
	}
	for _, in := range inputsForKeys(inpututil.AppendJustPressedKeys(nil)) {
		a.game.HandleInput(in)
	}
	if !a.game.Running() || !a.game.Update() {
		return ebiten.Termination
	}
	return nil
}

func inputsForKeys(keys []ebiten.Key) []game.Input {
	var inputs []game.Input
	for _, k := range keys {
		switch k {
		case ebiten.KeyEscape:
			inputs = append(inputs, game.InputQuit)
		case ebiten.KeyArrowUp:
			inputs = append(inputs, game.InputUp)
		case ebiten.KeyArrowDown:
			inputs = append(inputs, game.InputDown)
		case ebiten.KeyArrowLeft:
			inputs = append(inputs, game.InputLeft)
		case ebiten.KeyArrowRight:
			inputs = append(inputs, game.InputRight)
		}
	}
	return inputs
}

func rgba(c types.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(types.Background))
	for _, r := range a.renderer.Layout(a.game.Frame()) {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(r.Color), false)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
