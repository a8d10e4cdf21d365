// Package layout maps grid frames to pixel rectangles.
package layout

import (
	"snake-game/game"
	"snake-game/game/types"
)

// Rect is a filled square in pixel coordinates
type Rect struct {
	X, Y, W, H int32
	Color      types.Color
}

// Renderer turns a frame into the rectangles to fill, snake first then food.
type Renderer struct {
	cellSize int32
}

func NewRenderer(tileSize int) *Renderer {
	return &Renderer{cellSize: int32(tileSize)}
}

func (r *Renderer) cell(p types.Point, c types.Color) Rect {
	return Rect{
		X:     int32(p.X) * r.cellSize,
		Y:     int32(p.Y) * r.cellSize,
		W:     r.cellSize,
		H:     r.cellSize,
		Color: c,
	}
}

// Layout returns the rectangles for f in drawing order
func (r *Renderer) Layout(f game.Frame) []Rect {
	rects := make([]Rect, 0, len(f.Snake)+1)
	for _, p := range f.Snake {
		rects = append(rects, r.cell(p, types.SnakeColor))
	}
	return append(rects, r.cell(f.Food, types.FoodColor))
}
