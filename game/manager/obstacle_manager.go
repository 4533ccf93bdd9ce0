package manager

import (
	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
)

// ObstacleManager generates the fixed obstacle set of a session.
type ObstacleManager struct {
	grid  types.Grid
	count int
	rng   *rand.Rand
}

func NewObstacleManager(grid types.Grid, count int, rng *rand.Rand) *ObstacleManager {
	return &ObstacleManager{
		grid:  grid,
		count: count,
		rng:   rng,
	}
}

// Generate returns count random cells. Duplicates are kept, matching plain
// independent draws.
func (om *ObstacleManager) Generate() []types.Point {
	obstacles := make([]types.Point, 0, om.count)
	for i := 0; i < om.count; i++ {
		obstacles = append(obstacles, randomCell(om.grid, om.rng))
	}
	return obstacles
}
