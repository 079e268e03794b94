package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"

	"golang.org/x/exp/rand"
)

// maxRerolls bounds the rejection loop before falling back to a free-cell scan.
const maxRerolls = 64

type FoodManager struct {
	grid      types.Grid
	placement types.FoodPlacement
	rng       *rand.Rand
	food      types.Point
}

func NewFoodManager(grid types.Grid, placement types.FoodPlacement, seed uint64) *FoodManager {
	return &FoodManager{
		grid:      grid,
		placement: placement,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// Place moves the food to a new random cell and returns it.
//
// With PlaceAnywhere the cell is rolled once and may coincide with the snake.
// With PlaceAvoidSnake it is re-rolled until it is free; if the grid has no
// free cell the food is left where it was.
func (fm *FoodManager) Place(snake *entity.Snake) types.Point {
	if fm.placement == types.PlaceAnywhere {
		fm.food = fm.roll()
		return fm.food
	}

	for i := 0; i < maxRerolls; i++ {
		food := fm.roll()
		if !snake.Contains(food) {
			fm.food = food
			return fm.food
		}
	}

	// Crowded board: pick uniformly among what is left.
	occupied := make(map[types.Point]bool, snake.Len())
	for _, p := range snake.Cells() {
		occupied[p] = true
	}
	free := make([]types.Point, 0, max(fm.grid.Cells()-len(occupied), 0))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) > 0 {
		fm.food = free[fm.rng.Intn(len(free))]
	}
	return fm.food
}

func (fm *FoodManager) roll() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

// SetFood puts the food on a specific cell without consulting the policy.
func (fm *FoodManager) SetFood(p types.Point) {
	fm.food = p
}
