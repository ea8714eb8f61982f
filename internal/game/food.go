package game

import (
	"math/rand"

	"github.com/vs-123/snakey/internal/core"
)

// Food owns a single grid cell. Respawn draws each coordinate
// independently uniform over its axis range. It does not check for
// collision with the snake body, so food can land under the snake;
// that is long-standing behavior, not a bug.
type Food struct {
	pos core.Point
}

// NewFood creates food at a random cell.
func NewFood(rng *rand.Rand, grid core.Grid) *Food {
	f := &Food{}
	f.Respawn(rng, grid)
	return f
}

// Position returns the current cell.
func (f *Food) Position() core.Point {
	return f.pos
}

// Respawn draws a new cell uniformly over the grid.
func (f *Food) Respawn(rng *rand.Rand, grid core.Grid) {
	f.pos = core.Point{
		X: rng.Intn(grid.W),
		Y: rng.Intn(grid.H),
	}
}
