package manager

import (
	"snake-arcade/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	ObstacleCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall-collision"
	case SelfCollision:
		return "self-collision"
	case ObstacleCollision:
		return "obstacle-collision"
	}
	return "none"
}

// Outcome is the decision for a single tick.
type Outcome int

const (
	Continue Outcome = iota
	AteFood
	Collided
)

func (o Outcome) String() string {
	switch o {
	case AteFood:
		return "ate-food"
	case Collided:
		return "collided"
	}
	return "continue"
}

// Evaluation is the result of checking a new head cell. Ate and Collision
// are independent: a head may land on food and be fatal in the same tick.
type Evaluation struct {
	Ate       bool
	Collision CollisionType
}

// Outcome folds the evaluation into a single decision; collisions win.
func (e Evaluation) Outcome() Outcome {
	if e.Collision != NoCollision {
		return Collided
	}
	if e.Ate {
		return AteFood
	}
	return Continue
}

type CollisionManager struct {
	grid types.Grid
	// strictTail compares the new head against the whole pre-move body,
	// including the tail cell that is vacated this tick when not eating.
	strictTail bool
}

func NewCollisionManager(grid types.Grid, strictTail bool) *CollisionManager {
	return &CollisionManager{
		grid:       grid,
		strictTail: strictTail,
	}
}

// Evaluate checks head against the food cell, the playfield bounds, the body
// as it was before head was inserted, and the obstacles. It has no side effects.
func (cm *CollisionManager) Evaluate(head types.Point, body, obstacles []types.Point, food types.Point) Evaluation {
	ate := cm.IsFoodCollision(head, food)
	if !cm.strictTail && !ate && len(body) > 0 {
		body = body[:len(body)-1]
	}
	return Evaluation{
		Ate:       ate,
		Collision: cm.CheckCollision(head, body, obstacles),
	}
}

// CheckCollision checks all types of collisions for a given position
func (cm *CollisionManager) CheckCollision(pos types.Point, body, obstacles []types.Point) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if contains(body, pos) {
		return SelfCollision
	}
	if contains(obstacles, pos) {
		return ObstacleCollision
	}
	return NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

func contains(points []types.Point, p types.Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}
