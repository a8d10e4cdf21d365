package manager

import (
	"time"

	"snake-game/game/types"

	"golang.org/x/exp/rand"
)

// Intner is the slice of a random source the food placement needs
type Intner interface {
	Intn(n int) int
}

type FoodManager struct {
	grid types.Grid
	food types.Point
	rng  Intner
}

// NewFoodManager places the first food at start. A nil rng falls back to a
// time-seeded source.
func NewFoodManager(grid types.Grid, start types.Point, rng Intner) *FoodManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &FoodManager{
		grid: grid,
		food: start,
		rng:  rng,
	}
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// Relocate replaces the food with a uniformly random cell, each axis drawn
// independently. Cells occupied by the snake are not excluded.
func (fm *FoodManager) Relocate() types.Point {
	fm.food = types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
	return fm.food
}
