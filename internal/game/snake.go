package game

import "github.com/vs-123/snakey/internal/core"

// Snake owns an ordered sequence of grid cells (head at index 0), the
// current heading, and a pending-growth flag. Pure simulation, no I/O.
// Boundary and wrap policy is the machine's responsibility, applied to
// the head after Advance.
type Snake struct {
	segments []core.Point
	dir      Direction
	growing  bool
}

// NewSnake creates a snake of the given initial length heading right,
// head at the grid center with the body extending left.
func NewSnake(initialLength int, grid core.Grid) *Snake {
	if initialLength < 1 {
		initialLength = 1
	}
	cx := grid.W / 2
	cy := grid.H / 2

	segments := make([]core.Point, 0, initialLength)
	for i := 0; i < initialLength; i++ {
		segments = append(segments, core.Point{X: cx - i, Y: cy})
	}

	return &Snake{
		segments: segments,
		dir:      DirRight,
	}
}

// Head returns the current head cell.
func (s *Snake) Head() core.Point {
	return s.segments[0]
}

// SetHead overwrites the head cell only. Used to apply wrap-around
// correction post-advance without disturbing the rest of the body.
func (s *Snake) SetHead(p core.Point) {
	s.segments[0] = p
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// SetDirection updates the heading unless d is the exact opposite of the
// current heading, in which case the request is silently ignored.
func (s *Snake) SetDirection(d Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.dir = d
}

// Advance computes a new head one grid step along the heading, prepends
// it, and removes the tail unless growth is pending. A pending growth is
// consumed: the sequence grows by one and the flag clears.
func (s *Snake) Advance() {
	dx, dy := s.dir.Delta()
	head := s.segments[0]
	newHead := core.Point{X: head.X + dx, Y: head.Y + dy}

	s.segments = append([]core.Point{newHead}, s.segments...)
	if s.growing {
		s.growing = false
	} else {
		s.segments = s.segments[:len(s.segments)-1]
	}
}

// Grow sets the pending-growth flag; it takes effect on the next Advance.
func (s *Snake) Grow() {
	s.growing = true
}

// HasSelfCollision reports whether the head cell equals any non-head
// segment. Checked after Advance and after boundary handling.
func (s *Snake) HasSelfCollision() bool {
	head := s.segments[0]
	for _, seg := range s.segments[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Length returns the segment count.
func (s *Snake) Length() int {
	return len(s.segments)
}

// Segments returns the segment cells head-first. The slice is a copy;
// callers may not mutate snake state through it.
func (s *Snake) Segments() []core.Point {
	out := make([]core.Point, len(s.segments))
	copy(out, s.segments)
	return out
}
