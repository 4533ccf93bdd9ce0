package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Status is the lifecycle of a session.
type Status int

const (
	StatusRunning Status = iota
	StatusOver
)

// Options configures a session.
type Options struct {
	Grid       types.Grid
	Difficulty types.Difficulty
	Obstacles  int
	StrictTail bool
	Rand       *rand.Rand
}

// TickResult describes what happened during one Update.
type TickResult struct {
	Moved     bool
	Ate       bool
	Head      types.Point
	Collision manager.CollisionType
}

// Summary is the record of a finished session.
type Summary struct {
	UUID       string        `json:"uuid"`
	Difficulty string        `json:"difficulty"`
	Score      int           `json:"score"`
	Steps      int           `json:"steps"`
	Duration   time.Duration `json:"duration"`
	Cause      string        `json:"cause"`
}

// Game is one session: reset to a fresh board, run until a collision.
type Game struct {
	UUID       string
	Grid       types.Grid
	Difficulty types.Difficulty
	Score      int
	Steps      int
	StartTime  time.Time
	EndTime    time.Time

	snake         *entity.Snake
	food          types.Point
	obstacles     []types.Point
	status        Status
	lastCollision manager.CollisionType

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	obstacleMgr  *manager.ObstacleManager
}

func NewGame(opts Options) *Game {
	if opts.Grid == (types.Grid{}) {
		opts.Grid = types.DefaultGrid()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	g := &Game{
		Grid:         opts.Grid,
		Difficulty:   opts.Difficulty,
		collisionMgr: manager.NewCollisionManager(opts.Grid, opts.StrictTail),
		foodMgr:      manager.NewFoodManager(opts.Grid, opts.Rand),
		obstacleMgr:  manager.NewObstacleManager(opts.Grid, opts.Obstacles, opts.Rand),
	}
	g.Reset()
	return g
}

// Reset puts the session back to its initial state under a new id.
func (g *Game) Reset() {
	g.UUID = uuid.New().String()
	g.snake = entity.NewSnake(types.StartBody(), types.Right)
	g.food = g.foodMgr.GenerateFood()
	g.obstacles = g.obstacleMgr.Generate()
	g.Score = 0
	g.Steps = 0
	g.status = StatusRunning
	g.lastCollision = manager.NoCollision
	g.StartTime = time.Now()
	g.EndTime = time.Time{}
}

// Steer buffers a direction change for the next tick.
func (g *Game) Steer(dir types.Direction) {
	if g.status != StatusRunning {
		return
	}
	g.snake.SetDirection(dir)
}

// Update advances the session by one tick.
func (g *Game) Update() TickResult {
	if g.status != StatusRunning {
		return TickResult{Collision: g.lastCollision}
	}
	g.Steps++

	g.snake.CommitDirection()
	newHead := g.snake.NextHead(g.Grid.Cell)
	ev := g.collisionMgr.Evaluate(newHead, g.snake.Body, g.obstacles, g.food)

	g.snake.Move(newHead)
	if ev.Ate {
		g.Score++
		g.food = g.foodMgr.GenerateFood()
	} else {
		g.snake.RemoveTail()
	}

	if ev.Collision != manager.NoCollision {
		g.status = StatusOver
		g.lastCollision = ev.Collision
		g.EndTime = time.Now()
	}

	return TickResult{
		Moved:     true,
		Ate:       ev.Ate,
		Head:      newHead,
		Collision: ev.Collision,
	}
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.food
}

// GetObstacles returns a copy of the obstacle set.
func (g *Game) GetObstacles() []types.Point {
	obstacles := make([]types.Point, len(g.obstacles))
	copy(obstacles, g.obstacles)
	return obstacles
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) IsOver() bool {
	return g.status == StatusOver
}

func (g *Game) LastCollision() manager.CollisionType {
	return g.lastCollision
}

// ElapsedTime returns the session duration so far.
func (g *Game) ElapsedTime() time.Duration {
	if !g.EndTime.IsZero() {
		return g.EndTime.Sub(g.StartTime)
	}
	return time.Since(g.StartTime)
}

func (g *Game) Summary() Summary {
	return Summary{
		UUID:       g.UUID,
		Difficulty: g.Difficulty.Name,
		Score:      g.Score,
		Steps:      g.Steps,
		Duration:   g.ElapsedTime(),
		Cause:      g.lastCollision.String(),
	}
}
