package entity

import "snake-arcade/game/types"

// Snake holds the body head first. Body is only changed through Move and
// RemoveTail so that growth always follows the insert-head/maybe-pop-tail rule.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	next      types.Direction
}

func NewSnake(body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		Body:      b,
		Direction: dir,
		next:      dir,
	}
}

// SetDirection buffers dir for the next tick. A direct reverse of the
// committed direction is ignored.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.NoDirection || dir == s.Direction.Opposite() {
		return
	}
	s.next = dir
}

// PendingDirection returns the buffered direction.
func (s *Snake) PendingDirection() types.Direction {
	return s.next
}

// CommitDirection makes the buffered direction current.
func (s *Snake) CommitDirection() types.Direction {
	s.Direction = s.next
	return s.Direction
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// NextHead is the head translated one cell along the current direction.
func (s *Snake) NextHead(cell int) types.Point {
	d := s.Direction.ToPoint()
	return s.GetHead().Add(types.Point{X: d.X * cell, Y: d.Y * cell})
}

func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns a copy of the body.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
