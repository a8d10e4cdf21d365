package entity

import (
	"errors"

	"snake-game/game/types"
)

// ErrEmptySnake is returned when a snake is built without cells
var ErrEmptySnake = errors.New("entity: snake needs at least one cell")

type Snake struct {
	Body      *Body
	Direction Heading
}

func NewSnake(cells []types.Point, dir Heading) (*Snake, error) {
	if len(cells) == 0 {
		return nil, ErrEmptySnake
	}
	return &Snake{
		Body:      NewBody(cells),
		Direction: dir,
	}, nil
}

// Move pushes newHead at the front and drops the tail
func (s *Snake) Move(newHead types.Point) {
	s.Body.PushFront(newHead)
	s.Body.PopBack()
}

// Grow pushes newHead at the front and keeps the tail
func (s *Snake) Grow(newHead types.Point) {
	s.Body.PushFront(newHead)
}

func (s *Snake) GetHead() types.Point {
	return s.Body.At(0)
}

// NextHead is the cell the head enters on the next move
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.Delta())
}

// SetDirection overwrites the heading. Reversals are not rejected, the
// self-collision check catches them on the next move.
func (s *Snake) SetDirection(dir Heading) {
	s.Direction = dir
}

func (s *Snake) Len() int {
	return s.Body.Len()
}
