package manager

import (
	"testing"

	"snake-game/game/types"
)

type fixedRand struct {
	values []int
	calls  []int
}

func (r *fixedRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

func TestFoodManagerStartsAtFixedCell(t *testing.T) {
	fm := NewFoodManager(types.Grid{Width: 32, Height: 24}, types.Point{X: 15, Y: 15}, &fixedRand{})
	if fm.GetFood() != (types.Point{X: 15, Y: 15}) {
		t.Errorf("Expected food at (15,15), got %v", fm.GetFood())
	}
}

func TestRelocateDrawsEachAxis(t *testing.T) {
	rng := &fixedRand{values: []int{3, 7}}
	fm := NewFoodManager(types.Grid{Width: 32, Height: 24}, types.Point{X: 15, Y: 15}, rng)

	got := fm.Relocate()
	if got != (types.Point{X: 3, Y: 7}) {
		t.Errorf("Expected (3,7), got %v", got)
	}
	if fm.GetFood() != got {
		t.Errorf("Expected GetFood to return relocated cell %v, got %v", got, fm.GetFood())
	}
	if len(rng.calls) != 2 || rng.calls[0] != 32 || rng.calls[1] != 24 {
		t.Errorf("Expected bounds [32 24], got %v", rng.calls)
	}
}

func TestRelocateDefaultSourceStaysInBounds(t *testing.T) {
	grid := types.Grid{Width: 32, Height: 24}
	fm := NewFoodManager(grid, types.Point{}, nil)
	for i := 0; i < 1000; i++ {
		if p := fm.Relocate(); !grid.Contains(p) {
			t.Fatalf("Food %v outside %dx%d grid", p, grid.Width, grid.Height)
		}
	}
}
