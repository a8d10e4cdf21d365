package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision inspects the head of a snake that has already moved.
// Walls are checked first and win over self collisions.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	head := snake.GetHead()
	if cm.isWallCollision(head) {
		return WallCollision
	}
	if cm.isSelfCollision(head, snake.Body) {
		return SelfCollision
	}
	return NoCollision
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision compares pos with every segment but the head
func (cm *CollisionManager) isSelfCollision(pos types.Point, body *entity.Body) bool {
	for i := 1; i < body.Len(); i++ {
		if body.At(i) == pos {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
