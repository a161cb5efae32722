package mapgen

import (
	"math/rand"

	"mapforge/pkg/engine/grid"
)

// Tile is the tri-state cell value produced by the drunk-walk generator.
type Tile uint8

// Tile states. Floor is set only by the walk itself; walls are derived
// afterwards from floor adjacency and never overwrite floor.
const (
	TileEmpty Tile = iota
	TileFloor
	TileWall
)

// Intersection allowance presets for CarveFloor.
const (
	NoIntersection    = 0.0
	BasicIntersection = 0.75
	FullIntersection  = 1.0
)

// UnlimitedSteps makes CarveFloor run until the walk is stuck.
const UnlimitedSteps = -1

// DrunkWalk carves corridors by walking a single cursor across the grid.
// The cursor starts at the grid center and persists across CarveFloor
// calls, so repeated passes compose into one longer, branchier layout.
//
// Random draws, per step attempt: one shuffle of the four cardinal
// directions, plus one uniform [0,1) roll for each non-empty candidate
// examined while the intersection allowance is above zero.
type DrunkWalk struct {
	rng     *rand.Rand
	tiles   *grid.Grid[Tile]
	cursor  grid.Point
	canWalk bool
}

// NewDrunkWalk creates a generator over an all-empty grid. Nothing is
// carved until CarveFloor is called; in particular the starting cell is
// not marked floor, since only cells entered by an accepted move are.
func NewDrunkWalk(seed int64, width, height int) (*DrunkWalk, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	tiles := grid.New[Tile](width, height)
	return &DrunkWalk{
		rng:     rand.New(rand.NewSource(seed)),
		tiles:   tiles,
		cursor:  tiles.Center(),
		canWalk: true,
	}, nil
}

// CarveFloor walks the cursor for at most maxSteps step attempts
// (UnlimitedSteps runs until stuck), marking every cell it moves into as
// floor. Each attempt examines the four directions in a freshly shuffled
// order and takes the first candidate that is in bounds and either empty
// or, when intersectionAllowance is above zero, passes an allowance roll.
// An attempt with no acceptable candidate leaves the walk stuck and ends
// the pass; that is a normal terminal state, not an error.
func (d *DrunkWalk) CarveFloor(maxSteps int, intersectionAllowance float64) {
	canWalk := true

	for (maxSteps == UnlimitedSteps || maxSteps > 0) && canWalk {
		canWalk = false

		// Shuffle a fresh canonical ordering each attempt.
		directions := grid.AllDirections()
		d.rng.Shuffle(len(directions), func(i, j int) {
			directions[i], directions[j] = directions[j], directions[i]
		})

		for _, dir := range directions {
			dx, dy := dir.Delta()
			next := grid.Point{X: d.cursor.X + dx, Y: d.cursor.Y + dy}

			if !d.tiles.InBounds(next.X, next.Y) {
				continue
			}
			if d.tiles.At(next.X, next.Y) != TileEmpty &&
				(intersectionAllowance == NoIntersection || d.rng.Float64() > intersectionAllowance) {
				continue
			}

			d.cursor = next
			d.tiles.Set(next.X, next.Y, TileFloor)
			canWalk = true
			break
		}

		if maxSteps != UnlimitedSteps {
			maxSteps--
		}
	}

	d.canWalk = canWalk
}

// MarkWalls turns every empty cell with at least one floor cell among its
// eight neighbours into a wall. Floor cells are never touched, and cells
// outside the grid count as non-floor. Re-running without carving in
// between reproduces the same wall set.
func (d *DrunkWalk) MarkWalls() {
	for y := 0; y < d.tiles.Height(); y++ {
		for x := 0; x < d.tiles.Width(); x++ {
			if d.tiles.At(x, y) != TileEmpty {
				continue
			}
			for _, off := range grid.Moore8 {
				if d.tiles.At(x+off.X, y+off.Y) == TileFloor {
					d.tiles.Set(x, y, TileWall)
					break
				}
			}
		}
	}
}

// TileAt returns the tile at (x, y), or TileEmpty if out of bounds.
func (d *DrunkWalk) TileAt(x, y int) Tile {
	return d.tiles.At(x, y)
}

// CanWalk reports whether the last CarveFloor pass ended while the cursor
// could still move. False means the pass ended stuck, with no acceptable
// candidate among the four directions, rather than by exhausting its step
// budget.
func (d *DrunkWalk) CanWalk() bool {
	return d.canWalk
}

// Cursor returns the walk cursor's current position.
func (d *DrunkWalk) Cursor() grid.Point {
	return d.cursor
}

// Width returns the number of columns in the map.
func (d *DrunkWalk) Width() int {
	return d.tiles.Width()
}

// Height returns the number of rows in the map.
func (d *DrunkWalk) Height() int {
	return d.tiles.Height()
}
