package manager

import (
	"testing"

	"classic-snake/game/entity"
	"classic-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grid24 = types.Grid{Width: 24, Height: 24}

func TestCollisionManager_Wall(t *testing.T) {
	cm := NewCollisionManager(grid24)
	testCases := []struct {
		name     string
		pos      types.Point
		expected bool
	}{
		{"inside", types.Point{X: 5, Y: 5}, false},
		{"last column", types.Point{X: 23, Y: 0}, false},
		{"right edge", types.Point{X: 24, Y: 5}, true},
		{"left edge", types.Point{X: -1, Y: 5}, true},
		{"top edge", types.Point{X: 5, Y: -1}, true},
		{"bottom edge", types.Point{X: 5, Y: 24}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, cm.IsWallCollision(tc.pos))
		})
	}
}

func TestCollisionManager_Check(t *testing.T) {
	cm := NewCollisionManager(grid24)

	alive := entity.NewSnake([]types.Point{{5, 5}, {4, 5}, {3, 5}}, types.Right)
	assert.Equal(t, types.NoCollision, cm.Check(alive))

	// Head folded back onto the body.
	bitten := entity.NewSnake([]types.Point{{5, 5}, {5, 6}, {4, 6}, {4, 5}, {5, 5}}, types.Up)
	assert.Equal(t, types.SelfCollision, cm.Check(bitten))

	out := entity.NewSnake([]types.Point{{24, 5}, {23, 5}, {22, 5}}, types.Right)
	assert.Equal(t, types.WallCollision, cm.Check(out))
}

func TestFoodManager_PlaceInBounds(t *testing.T) {
	for _, placement := range []types.FoodPlacement{types.PlaceAvoidSnake, types.PlaceAnywhere} {
		t.Run(placement.String(), func(t *testing.T) {
			fm := NewFoodManager(grid24, placement, 7)
			snake := entity.NewSnake([]types.Point{{5, 5}, {4, 5}, {3, 5}}, types.Right)
			for i := 0; i < 1000; i++ {
				food := fm.Place(snake)
				assert.True(t, grid24.Contains(food), "food %v out of bounds", food)
				assert.Equal(t, food, fm.GetFood())
			}
		})
	}
}

func TestFoodManager_SameSeedSameSequence(t *testing.T) {
	snake := entity.NewSnake([]types.Point{{5, 5}, {4, 5}, {3, 5}}, types.Right)
	a := NewFoodManager(grid24, types.PlaceAvoidSnake, 12345)
	b := NewFoodManager(grid24, types.PlaceAvoidSnake, 12345)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Place(snake), b.Place(snake))
	}
}

// snakeFilling builds a boustrophedon snake covering every cell of g except skip.
func snakeFilling(g types.Grid, skip types.Point) *entity.Snake {
	var cells []types.Point
	for y := 0; y < g.Height; y++ {
		for i := 0; i < g.Width; i++ {
			x := i
			if y%2 == 1 {
				x = g.Width - 1 - i
			}
			p := types.Point{X: x, Y: y}
			if p != skip {
				cells = append(cells, p)
			}
		}
	}
	return entity.NewSnake(cells, types.Right)
}

func TestFoodManager_AvoidSnakeFindsLastFreeCell(t *testing.T) {
	g := types.Grid{Width: 6, Height: 6}
	free := types.Point{X: 5, Y: 5}
	snake := snakeFilling(g, free)

	fm := NewFoodManager(g, types.PlaceAvoidSnake, 1)
	for i := 0; i < 20; i++ {
		assert.Equal(t, free, fm.Place(snake))
	}
}

func TestFoodManager_AvoidSnakeNeverOnSnake(t *testing.T) {
	g := types.Grid{Width: 4, Height: 4}
	snake := entity.NewSnake([]types.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {2, 1}, {1, 1}, {0, 1}}, types.Down)
	fm := NewFoodManager(g, types.PlaceAvoidSnake, 99)
	for i := 0; i < 500; i++ {
		assert.False(t, snake.Contains(fm.Place(snake)))
	}
}

func TestFoodManager_AnywhereCanLandOnSnake(t *testing.T) {
	g := types.Grid{Width: 2, Height: 2}
	snake := entity.NewSnake([]types.Point{{0, 0}, {1, 0}, {1, 1}}, types.Left)
	fm := NewFoodManager(g, types.PlaceAnywhere, 3)

	onSnake := 0
	for i := 0; i < 200; i++ {
		if snake.Contains(fm.Place(snake)) {
			onSnake++
		}
	}
	assert.Positive(t, onSnake)
}

func TestFoodManager_FullGridKeepsFood(t *testing.T) {
	g := types.Grid{Width: 2, Height: 2}
	fm := NewFoodManager(g, types.PlaceAvoidSnake, 5)

	partial := entity.NewSnake([]types.Point{{0, 0}, {1, 0}, {1, 1}}, types.Left)
	last := fm.Place(partial)
	require.Equal(t, types.Point{X: 0, Y: 1}, last)

	full := entity.NewSnake([]types.Point{{0, 1}, {0, 0}, {1, 0}, {1, 1}}, types.Up)
	assert.Equal(t, last, fm.Place(full))
}
