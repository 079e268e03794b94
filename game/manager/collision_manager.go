package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsSelfCollision checks if the head overlaps any other segment of the snake
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.BodyContains(snake.GetHead())
}

// Check runs both checks against the current head. Wall wins when both fire.
func (cm *CollisionManager) Check(snake *entity.Snake) types.CollisionType {
	if cm.IsWallCollision(snake.GetHead()) {
		return types.WallCollision
	}
	if cm.IsSelfCollision(snake) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
