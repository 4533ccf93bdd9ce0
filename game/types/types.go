package types

import "time"

// Playfield constants, in logical units.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	CellSize     = 20

	DefaultObstacles = 10
)

// Point is a position on the playfield in logical units.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid represents the playfield dimensions
type Grid struct {
	Width  int
	Height int
	Cell   int
}

// DefaultGrid is the 800x600 surface split into 20 unit cells.
func DefaultGrid() Grid {
	return Grid{Width: ScreenWidth, Height: ScreenHeight, Cell: CellSize}
}

// Cols returns the number of cell columns.
func (g Grid) Cols() int { return g.Width / g.Cell }

// Rows returns the number of cell rows.
func (g Grid) Rows() int { return g.Height / g.Cell }

// Contains reports whether p lies inside the playfield. There is no wrap-around.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Direction is one of the four movement directions.
type Direction int

const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

// ToPoint returns the unit vector for d.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return NoDirection
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return "NONE"
}

// Difficulty names a tick rate selectable from the menu.
type Difficulty struct {
	Name           string
	TicksPerSecond int
}

var (
	Easy   = Difficulty{Name: "Easy", TicksPerSecond: 10}
	Medium = Difficulty{Name: "Medium", TicksPerSecond: 15}
	Hard   = Difficulty{Name: "Hard", TicksPerSecond: 20}
)

// Interval is the simulation step length at this difficulty.
func (d Difficulty) Interval() time.Duration {
	if d.TicksPerSecond <= 0 {
		return 0
	}
	return time.Second / time.Duration(d.TicksPerSecond)
}

// StartBody is the snake every session starts with, head first.
func StartBody() []Point {
	return []Point{{X: 100, Y: 100}, {X: 90, Y: 100}, {X: 80, Y: 100}}
}
