package ui

import (
	"errors"

	"snake-game/game"
	"snake-game/game/types"
	"snake-game/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrWindowNotReady is returned when raylib could not open the window or lost it
var ErrWindowNotReady = errors.New("ui: window not ready")

func toRL(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// Window is the raylib display. Escape is handled as an input instead of
// raylib's built-in exit key.
type Window struct {
	renderer *layout.Renderer
	input    inputSource
	pending  []game.Input // drained right after EndDrawing
}

// inputSource is the part of raylib's input API the window reads from.
type inputSource interface {
	PollInputEvents()
	WindowShouldClose() bool
	GetKeyPressed() int32
}

type raylibInput struct{}

func (raylibInput) PollInputEvents()        { rl.PollInputEvents() }
func (raylibInput) WindowShouldClose() bool { return rl.WindowShouldClose() }
func (raylibInput) GetKeyPressed() int32    { return rl.GetKeyPressed() }

// OpenWindow creates the window. Call Close when done.
func OpenWindow(width, height int, title string, tileSize int) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return nil, ErrWindowNotReady
	}
	rl.SetExitKey(rl.KeyNull)
	return &Window{
		renderer: layout.NewRenderer(tileSize),
		input:    raylibInput{},
	}, nil
}

func (w *Window) Close() {
	rl.CloseWindow()
}

// Poll returns the input buffered at the last EndDrawing followed by what
// arrived since. EndDrawing resets raylib's key queue when it polls, so the
// queue is drained there and again here at the start of the tick.
func (w *Window) Poll() []game.Input {
	w.input.PollInputEvents()
	inputs := append(w.pending, w.drain()...)
	w.pending = nil
	return inputs
}

func (w *Window) bufferInput() {
	w.pending = append(w.pending, w.drain()...)
}

func (w *Window) drain() []game.Input {
	var inputs []game.Input
	if w.input.WindowShouldClose() {
		inputs = append(inputs, game.InputQuit)
	}
	for key := w.input.GetKeyPressed(); key != 0; key = w.input.GetKeyPressed() {
		if in := inputForKey(key); in != game.InputNone {
			inputs = append(inputs, in)
		}
	}
	return inputs
}

func inputForKey(key int32) game.Input {
	switch key {
	case rl.KeyEscape:
		return game.InputQuit
	case rl.KeyUp:
		return game.InputUp
	case rl.KeyDown:
		return game.InputDown
	case rl.KeyLeft:
		return game.InputLeft
	case rl.KeyRight:
		return game.InputRight
	default:
		return game.InputNone
	}
}

func (w *Window) Render(f game.Frame) error {
	if !rl.IsWindowReady() {
		return ErrWindowNotReady
	}
	rl.BeginDrawing()
	rl.ClearBackground(toRL(types.Background))
	for _, r := range w.renderer.Layout(f) {
		rl.DrawRectangle(r.X, r.Y, r.W, r.H, toRL(r.Color))
	}
	rl.EndDrawing()
	w.bufferInput()
	return nil
}
