package types

import "time"

// Point is a grid cell coordinate
type Point struct {
	X, Y int
}

// Add returns p moved by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// Screen and tile geometry
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	TileSize     = 20
	WindowTitle  = "Snake Game"
)

// Game constants
const (
	TickInterval = time.Second / 10 // 10 ticks per second
	FoodX        = 15
	FoodY        = 15
)

// Color is an RGB triple shared by all renderers
type Color struct {
	R, G, B uint8
}

var (
	Background = Color{R: 0, G: 0, B: 0}
	SnakeColor = Color{R: 255, G: 0, B: 0}
	FoodColor  = Color{R: 0, G: 255, B: 0}
)

// Config carries the compile-time constants into the game constructors.
// Only tests build a non-default one.
type Config struct {
	Grid         Grid
	TileSize     int
	TickInterval time.Duration
	Start        []Point // head first
	Food         Point
}

// DefaultConfig returns the 32x24 board with the initial snake stacked vertically at (10,10).
func DefaultConfig() Config {
	return Config{
		Grid: Grid{
			Width:  ScreenWidth / TileSize,
			Height: ScreenHeight / TileSize,
		},
		TileSize:     TileSize,
		TickInterval: TickInterval,
		Start:        []Point{{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 10, Y: 12}},
		Food:         Point{X: FoodX, Y: FoodY},
	}
}
