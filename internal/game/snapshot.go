package game

import "github.com/vs-123/snakey/internal/core"

// Snapshot captures the machine's observable state for tests and
// debugging.
type Snapshot struct {
	State         State
	Prev          State
	SnakeLen      int
	Head          core.Point
	Dir           Direction
	Food          core.Point
	Best          int
	InitialLength int
	TickMs        int
	Wrap          bool
	Editing       bool
}

// Snapshot returns the current machine snapshot.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		State:         m.state,
		Prev:          m.prev,
		Best:          m.best,
		InitialLength: m.settings.InitialLength(),
		TickMs:        m.settings.TickMs(),
		Wrap:          m.settings.Wrap(),
		Editing:       m.isEditing,
	}
	if m.snake != nil {
		snap.SnakeLen = m.snake.Length()
		snap.Head = m.snake.Head()
		snap.Dir = m.snake.Direction()
	}
	if m.food != nil {
		snap.Food = m.food.Position()
	}
	return snap
}
