package mapgen

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"mapforge/pkg/engine/grid"
)

// Sentinel region ids for point queries.
const (
	RegionOutOfBounds = -1
	RegionUnclaimed   = 0
)

// Area is one grown region: its fixed origin, every claimed cell in claim
// order, and the ids of foreign regions met while growing. Membership and
// neighbour lists only ever grow; areas are created at construction and
// never destroyed.
type Area struct {
	id         int
	origin     grid.Point
	positions  []grid.Point
	neighbours []int
	known      mapset.Set[int]
}

func newArea(id int, origin grid.Point) *Area {
	return &Area{
		id:     id,
		origin: origin,
		known:  mapset.New[int](),
	}
}

// ID returns the area's region id.
func (a *Area) ID() int {
	return a.id
}

// Origin returns the seed point the area grew from.
func (a *Area) Origin() grid.Point {
	return a.origin
}

// Positions returns the cells claimed by the area, in claim order.
// The slice is owned by the area and must not be modified.
func (a *Area) Positions() []grid.Point {
	return a.positions
}

// Neighbours returns the foreign region ids this area ran into while
// growing, in first-contact order. The relation is one-directional: it is
// recorded at the moment this area loses a contested cell, so the other
// area only lists this one if its own growth independently touched this
// area's territory. Callers needing symmetric adjacency union both sides.
func (a *Area) Neighbours() []int {
	return a.neighbours
}

func (a *Area) addNeighbour(id int) {
	if id == a.id || a.known.Has(id) {
		return
	}
	a.known.Put(id)
	a.neighbours = append(a.neighbours, id)
}

// frontier is one region's current-round claim candidates.
type frontier struct {
	id        int
	positions []grid.Point
}

// Voronoi partitions a grid into regions grown outward from seed points in
// synchronized rounds until every reachable cell is claimed. Contested
// cells go to whichever region reaches them first, lowest id winning
// within a round, so the result is a discrete approximation of a
// geometric Voronoi diagram rather than an exact one.
//
// Random draws, in order: for each seed point its x then its y coordinate,
// drawn with replacement. Growth consumes no randomness.
type Voronoi struct {
	cells *grid.Grid[int]
	areas map[int]*Area
}

// NewVoronoi draws numSeeds origins uniformly over the grid and grows one
// region per origin, ids 1..numSeeds in draw order. Duplicate origins are
// allowed; the later duplicate loses the shared cell and ends up empty.
func NewVoronoi(seed int64, width, height, numSeeds int) (*Voronoi, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	if numSeeds < 1 {
		return nil, fmt.Errorf("seed count %d: %w", numSeeds, ErrInvalidConfiguration)
	}

	rng := rand.New(rand.NewSource(seed))
	origins := make([]grid.Point, numSeeds)
	for i := range origins {
		origins[i] = grid.Point{X: rng.Intn(width), Y: rng.Intn(height)}
	}

	return newVoronoi(width, height, origins), nil
}

// NewVoronoiWithOrigins grows regions from caller-chosen seed points
// instead of random draws, for level design that pins biome centers.
// Origins must lie inside the grid.
func NewVoronoiWithOrigins(width, height int, origins []grid.Point) (*Voronoi, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	if len(origins) < 1 {
		return nil, fmt.Errorf("seed count %d: %w", len(origins), ErrInvalidConfiguration)
	}
	for _, o := range origins {
		if o.X < 0 || o.X >= width || o.Y < 0 || o.Y >= height {
			return nil, fmt.Errorf("origin (%d,%d) outside %dx%d map: %w", o.X, o.Y, width, height, ErrInvalidConfiguration)
		}
	}

	own := make([]grid.Point, len(origins))
	copy(own, origins)
	return newVoronoi(width, height, own), nil
}

func newVoronoi(width, height int, origins []grid.Point) *Voronoi {
	v := &Voronoi{
		cells: grid.New[int](width, height),
		areas: make(map[int]*Area, len(origins)),
	}

	frontiers := make([]frontier, len(origins))
	for i, origin := range origins {
		id := i + 1
		v.areas[id] = newArea(id, origin)
		frontiers[i] = frontier{id: id, positions: []grid.Point{origin}}
	}

	v.grow(frontiers)
	return v
}

// grow runs synchronized rounds until every frontier is empty. Within a
// round, regions are processed in ascending id order and each frontier in
// its enumerated order; that ordering is the tie-break for contested
// cells and must stay stable for reproducibility.
func (v *Voronoi) grow(frontiers []frontier) {
	for len(frontiers) > 0 {
		var next []frontier

		for _, f := range frontiers {
			area := v.areas[f.id]
			var upcoming []grid.Point
			queued := mapset.New[grid.Point]()

			for _, pos := range f.positions {
				owner := v.cells.At(pos.X, pos.Y)
				if owner != RegionUnclaimed {
					// Lost the cell to an earlier claim; remember the
					// foreign owner, one direction only.
					area.addNeighbour(owner)
					continue
				}

				v.cells.Set(pos.X, pos.Y, f.id)
				area.positions = append(area.positions, pos)

				for _, off := range grid.Moore8 {
					candidate := grid.Point{X: pos.X + off.X, Y: pos.Y + off.Y}
					if !v.cells.InBounds(candidate.X, candidate.Y) || queued.Has(candidate) {
						continue
					}
					queued.Put(candidate)
					upcoming = append(upcoming, candidate)
				}
			}

			if len(upcoming) > 0 {
				next = append(next, frontier{id: f.id, positions: upcoming})
			}
		}

		frontiers = next
	}
}

// RegionAt returns the region id claiming (x, y), RegionUnclaimed for a
// cell no region reached, or RegionOutOfBounds outside the grid.
func (v *Voronoi) RegionAt(x, y int) int {
	if !v.cells.InBounds(x, y) {
		return RegionOutOfBounds
	}
	return v.cells.At(x, y)
}

// Region returns the area with the given id. Unknown ids resolve to a
// sentinel area with id RegionOutOfBounds and origin (-1,-1).
func (v *Voronoi) Region(id int) *Area {
	if a, ok := v.areas[id]; ok {
		return a
	}
	return newArea(RegionOutOfBounds, grid.Point{X: -1, Y: -1})
}

// PositionsOf returns every cell claimed by the region in claim order, or
// an empty list for unknown ids.
func (v *Voronoi) PositionsOf(id int) []grid.Point {
	return v.Region(id).Positions()
}

// NumRegions returns the number of regions grown.
func (v *Voronoi) NumRegions() int {
	return len(v.areas)
}

// Width returns the number of columns in the map.
func (v *Voronoi) Width() int {
	return v.cells.Width()
}

// Height returns the number of rows in the map.
func (v *Voronoi) Height() int {
	return v.cells.Height()
}
