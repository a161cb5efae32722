// Package grid provides generic 2D grid primitives for tile-based maps.
// These are engine-level constructs usable by any grid generator.
package grid

// Point is an (x, y) grid coordinate.
type Point struct {
	X int
	Y int
}

// Cardinal4 lists the four axis-aligned neighbour offsets.
var Cardinal4 = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Moore8 lists the eight surrounding neighbour offsets.
var Moore8 = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is a fixed-size rectangular grid of T stored in row-major order.
// Reads outside the bounds return the zero value of T, so boundary logic
// can treat the outside world as absent instead of special-casing edges.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// New allocates a zeroed grid with the given dimensions.
// Dimensions must be positive; callers validate before construction.
func New[T any](width, height int) *Grid[T] {
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

// Width returns the number of columns in the grid.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows in the grid.
func (g *Grid[T]) Height() int {
	return g.height
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the value at (x, y), or the zero value of T if out of bounds.
func (g *Grid[T]) At(x, y int) T {
	if !g.InBounds(x, y) {
		var zero T
		return zero
	}
	return g.cells[y*g.width+x]
}

// Set writes the value at (x, y). Returns false if out of bounds.
func (g *Grid[T]) Set(x, y int, value T) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.width+x] = value
	return true
}

// Center returns the grid's center point.
func (g *Grid[T]) Center() Point {
	return Point{X: g.width / 2, Y: g.height / 2}
}

// ForEach calls fn for every cell in row-major order.
func (g *Grid[T]) ForEach(fn func(x, y int, value T)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y*g.width+x])
		}
	}
}
