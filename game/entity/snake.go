package entity

import (
	"classic-snake/game/types"
)

// Snake is a head-first deque of cells backed by a ring buffer.
// Index 0 is the head, Len()-1 the tail.
type Snake struct {
	buf       []types.Point
	head      int // buf index of the head
	n         int
	Direction types.Direction
}

func NewSnake(cells []types.Point, dir types.Direction) *Snake {
	capacity := 8
	for capacity < len(cells) {
		capacity *= 2
	}
	s := &Snake{
		buf:       make([]types.Point, capacity),
		Direction: dir,
	}
	copy(s.buf, cells)
	s.n = len(cells)
	return s
}

func (s *Snake) Len() int {
	return s.n
}

// At returns the i-th segment counted from the head.
func (s *Snake) At(i int) types.Point {
	if i < 0 || i >= s.n {
		panic("snake: segment index out of range")
	}
	return s.buf[(s.head+i)%len(s.buf)]
}

func (s *Snake) GetHead() types.Point {
	return s.At(0)
}

func (s *Snake) GetTail() types.Point {
	return s.At(s.n - 1)
}

// PushFront makes p the new head. The old head becomes the first body segment.
func (s *Snake) PushFront(p types.Point) {
	if s.n == len(s.buf) {
		s.grow()
	}
	s.head = (s.head - 1 + len(s.buf)) % len(s.buf)
	s.buf[s.head] = p
	s.n++
}

// PopBack drops the tail segment and returns it.
func (s *Snake) PopBack() types.Point {
	if s.n == 0 {
		panic("snake: pop from empty snake")
	}
	tail := s.GetTail()
	s.n--
	return tail
}

func (s *Snake) grow() {
	buf := make([]types.Point, len(s.buf)*2)
	for i := 0; i < s.n; i++ {
		buf[i] = s.At(i)
	}
	s.buf = buf
	s.head = 0
}

// Cells copies the segments, head first.
func (s *Snake) Cells() []types.Point {
	out := make([]types.Point, s.n)
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

func (s *Snake) Contains(p types.Point) bool {
	return s.indexFrom(p, 0)
}

// BodyContains reports whether p is on any segment other than the head.
func (s *Snake) BodyContains(p types.Point) bool {
	return s.indexFrom(p, 1)
}

func (s *Snake) indexFrom(p types.Point, from int) bool {
	for i := from; i < s.n; i++ {
		if s.At(i) == p {
			return true
		}
	}
	return false
}

// SetDirection turns the snake unless dir would reverse it onto its own neck.
// Reports whether the direction was applied.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() {
		return false
	}
	// Prevent 180-degree turns
	if dir.ToPoint() == s.Direction.ToPoint().Neg() {
		return false
	}
	s.Direction = dir
	return true
}

// NextHead is the cell the head moves into on the next step.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.ToPoint())
}
