package entity

import "snake-game/game/types"

// Heading is one of the four cardinal directions
type Heading int

const (
	Up Heading = iota
	Down
	Left
	Right
)

// Delta converts a Heading into its unit displacement vector
func (h Heading) Delta() types.Point {
	switch h {
	case Up:
		return types.Point{X: 0, Y: -1} // Y grows downwards
	case Down:
		return types.Point{X: 0, Y: 1}
	case Left:
		return types.Point{X: -1, Y: 0}
	case Right:
		return types.Point{X: 1, Y: 0}
	default:
		return types.Point{}
	}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
