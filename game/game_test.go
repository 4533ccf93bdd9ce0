package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(Options{
		Difficulty: types.Easy,
		StrictTail: true,
		Rand:       rand.New(rand.NewSource(3)),
	})
	// Keep the board predictable: no obstacles and food far from the path.
	g.obstacles = nil
	g.food = types.Point{X: 20, Y: 580}
	return g
}

func TestResetInitialState(t *testing.T) {
	g := NewGame(Options{Difficulty: types.Medium, Obstacles: types.DefaultObstacles, Rand: rand.New(rand.NewSource(9))})
	require.Equal(t, types.StartBody(), g.GetSnake().Segments())
	require.Equal(t, types.Right, g.GetSnake().Direction)
	require.Len(t, g.GetObstacles(), types.DefaultObstacles)
	require.Zero(t, g.Score)
	require.Equal(t, StatusRunning, g.Status())
	require.NotEmpty(t, g.UUID)

	id := g.UUID
	g.Score = 5
	g.Reset()
	require.Zero(t, g.Score)
	require.NotEqual(t, id, g.UUID)
}

func TestTickWithoutFood(t *testing.T) {
	g := newTestGame(t)

	res := g.Update()
	require.True(t, res.Moved)
	require.False(t, res.Ate)
	require.Equal(t, manager.NoCollision, res.Collision)
	require.Equal(t, types.Point{X: 120, Y: 100}, g.GetSnake().GetHead())
	require.Equal(t, 3, g.GetSnake().Len())
	require.Equal(t, []types.Point{{X: 120, Y: 100}, {X: 100, Y: 100}, {X: 90, Y: 100}}, g.GetSnake().Segments())
}

func TestTickEatsFood(t *testing.T) {
	g := newTestGame(t)
	g.food = types.Point{X: 120, Y: 100}

	res := g.Update()
	require.True(t, res.Ate)
	require.Equal(t, 1, g.Score)
	require.Equal(t, 4, g.GetSnake().Len())
	require.True(t, g.Grid.Contains(g.GetFood()))
}

func TestLengthInvariantWithoutFood(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 30; i++ {
		res := g.Update()
		require.Equal(t, manager.NoCollision, res.Collision, "tick %d", i)
		require.Equal(t, 3, g.GetSnake().Len())
	}
	require.Equal(t, types.Point{X: 700, Y: 100}, g.GetSnake().GetHead())
}

func TestWallEndsSession(t *testing.T) {
	g := newTestGame(t)
	g.snake = entity.NewSnake([]types.Point{{X: 780, Y: 100}, {X: 760, Y: 100}, {X: 740, Y: 100}}, types.Right)

	res := g.Update()
	require.Equal(t, manager.WallCollision, res.Collision)
	require.Equal(t, types.Point{X: 800, Y: 100}, res.Head)
	require.True(t, g.IsOver())
	require.Equal(t, "wall-collision", g.Summary().Cause)

	// Further updates do nothing.
	res = g.Update()
	require.False(t, res.Moved)
	require.Equal(t, 1, g.Steps)
}

func TestObstacleEndsSession(t *testing.T) {
	g := newTestGame(t)
	g.obstacles = []types.Point{{X: 140, Y: 100}}

	require.Equal(t, manager.NoCollision, g.Update().Collision)
	require.Equal(t, manager.ObstacleCollision, g.Update().Collision)
	require.True(t, g.IsOver())
}

func TestReverseIsIgnored(t *testing.T) {
	g := newTestGame(t)
	g.Steer(types.Left)
	g.Update()
	require.Equal(t, types.Point{X: 120, Y: 100}, g.GetSnake().GetHead())

	g.Steer(types.Down)
	g.Update()
	require.Equal(t, types.Point{X: 120, Y: 120}, g.GetSnake().GetHead())
	require.Equal(t, types.Down, g.GetSnake().Direction)
}

func TestSelfCollisionOnLoop(t *testing.T) {
	g := newTestGame(t)
	g.snake = entity.NewSnake([]types.Point{
		{X: 200, Y: 200}, {X: 180, Y: 200}, {X: 160, Y: 200}, {X: 160, Y: 220}, {X: 180, Y: 220}, {X: 200, Y: 220}, {X: 220, Y: 220},
	}, types.Right)

	g.Steer(types.Down)
	res := g.Update()
	require.Equal(t, manager.SelfCollision, res.Collision)
}

func TestStrictTailQuirk(t *testing.T) {
	square := []types.Point{{X: 200, Y: 200}, {X: 220, Y: 200}, {X: 220, Y: 220}, {X: 200, Y: 220}}

	g := newTestGame(t)
	g.snake = entity.NewSnake(square, types.Left)
	g.Steer(types.Down)
	require.Equal(t, manager.SelfCollision, g.Update().Collision)

	lenient := NewGame(Options{Difficulty: types.Easy, StrictTail: false, Rand: rand.New(rand.NewSource(3))})
	lenient.obstacles = nil
	lenient.food = types.Point{X: 20, Y: 580}
	lenient.snake = entity.NewSnake(square, types.Left)
	lenient.Steer(types.Down)
	require.Equal(t, manager.NoCollision, lenient.Update().Collision)
	require.Equal(t, types.Point{X: 200, Y: 220}, lenient.GetSnake().GetHead())
}

func TestSteerAfterOverIsIgnored(t *testing.T) {
	g := newTestGame(t)
	g.status = StatusOver
	g.Steer(types.Up)
	require.Equal(t, types.Right, g.GetSnake().PendingDirection())
}

func TestClockAccumulates(t *testing.T) {
	c := NewClock(100 * time.Millisecond)
	require.Equal(t, 0, c.Advance(60*time.Millisecond))
	require.Equal(t, 1, c.Advance(60*time.Millisecond))
	require.Equal(t, 0, c.Advance(70*time.Millisecond))
	require.Equal(t, 1, c.Advance(10*time.Millisecond))
	require.Equal(t, 2, c.Advance(200*time.Millisecond))
}

func TestClockCapsCatchUp(t *testing.T) {
	c := NewClock(10 * time.Millisecond)
	require.Equal(t, maxCatchUp, c.Advance(time.Second))
	require.Equal(t, 0, c.Advance(time.Millisecond))

	c.Reset()
	require.Equal(t, 0, NewClock(0).Advance(time.Second))
}
