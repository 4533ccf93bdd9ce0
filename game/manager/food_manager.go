package manager

import (
	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
)

// FoodManager places food on random cells. Placement never checks the snake
// or the obstacles, so food may land on either.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

func (fm *FoodManager) GenerateFood() types.Point {
	return randomCell(fm.grid, fm.rng)
}

// randomCell picks a cell from columns 1..cols-1 and rows 1..rows-1, in
// logical units. Column 0 and row 0 are never chosen.
func randomCell(grid types.Grid, rng *rand.Rand) types.Point {
	return types.Point{
		X: (rng.Intn(grid.Cols()-1) + 1) * grid.Cell,
		Y: (rng.Intn(grid.Rows()-1) + 1) * grid.Cell,
	}
}
