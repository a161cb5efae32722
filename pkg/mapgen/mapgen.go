// Package mapgen implements seeded procedural map generators for 2D
// tile-based games: a charge-field landmass generator, a drunk-walk
// corridor carver and a Voronoi-like region grower.
//
// Each generator owns its grid and consumes its random stream in a
// documented order, so a fixed seed and configuration always reproduce the
// same map. Point queries are bounds-checked and resolve out-of-range
// coordinates to sentinels instead of failing, since boundary-adjacent
// lookups are a normal part of neighbour scanning.
package mapgen

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when generator parameters cannot
// produce a map: non-positive dimensions, zero charges, no seed points.
// It is raised at construction, before any grid is observable; once a
// generator exists its algorithms cannot fail.
var ErrInvalidConfiguration = errors.New("invalid configuration")

func validateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("map size %dx%d: %w", width, height, ErrInvalidConfiguration)
	}
	return nil
}
