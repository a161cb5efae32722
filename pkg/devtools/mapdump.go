// Package devtools provides developer tools for inspecting generated maps:
// plain-text dump files and colored terminal previews.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mapforge/pkg/mapgen"
)

const mapDumpFilename = "map.txt"

// chargeRamp maps a normalized field magnitude to a density glyph.
var chargeRamp = []rune(" .:-=+*#%@")

// walkSymbol returns the single-character symbol for a drunk-walk tile.
func walkSymbol(t mapgen.Tile) rune {
	switch t {
	case mapgen.TileFloor:
		return '.'
	case mapgen.TileWall:
		return '#'
	default:
		return ' '
	}
}

// chargeSymbol returns the density glyph for a field value, given the
// map's maximum value. Zeroed cells always map to a blank.
func chargeSymbol(value, max float64) rune {
	if value <= 0 || max <= 0 {
		return chargeRamp[0]
	}
	idx := int(value / max * float64(len(chargeRamp)-1))
	if idx >= len(chargeRamp) {
		idx = len(chargeRamp) - 1
	}
	if idx < 1 {
		idx = 1
	}
	return chargeRamp[idx]
}

// regionSymbol returns the letter for a region id, cycling through the
// alphabet for maps with more than 26 regions. Unclaimed cells map to '.'.
func regionSymbol(id int) rune {
	if id <= 0 {
		return '.'
	}
	return rune('A' + (id-1)%26)
}

// maxField returns the largest field value in a charge map.
func maxField(c *mapgen.ChargeField) float64 {
	max := 0.0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if v := c.FieldAt(x, y); v > max {
				max = v
			}
		}
	}
	return max
}

// WriteDrunkWalk writes a full debug dump of a drunk-walk map: metadata,
// legend and the tile grid. Format is human- and LLM-readable (sections,
// key: value, consistent structure).
func WriteDrunkWalk(w io.Writer, d *mapgen.DrunkWalk) {
	fmt.Fprintln(w, "=== MAP DUMP (drunk walk) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "width: %d\n", d.Width())
	fmt.Fprintf(w, "height: %d\n", d.Height())
	fmt.Fprintf(w, "cursor: %d,%d\n", d.Cursor().X, d.Cursor().Y)
	fmt.Fprintf(w, "can_walk: %v\n", d.CanWalk())
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, ". = floor  # = wall  (space) = empty")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Map ---")
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			fmt.Fprintf(w, "%c", walkSymbol(d.TileAt(x, y)))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "=== END MAP DUMP ===")
}

// WriteChargeField writes a full debug dump of a charge-field map, with
// magnitudes rendered as a density ramp.
func WriteChargeField(w io.Writer, c *mapgen.ChargeField) {
	max := maxField(c)

	fmt.Fprintln(w, "=== MAP DUMP (charge field) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "width: %d\n", c.Width())
	fmt.Fprintf(w, "height: %d\n", c.Height())
	fmt.Fprintf(w, "charges: %d\n", len(c.Charges()))
	fmt.Fprintf(w, "cutoff: %.4f\n", c.Cutoff())
	fmt.Fprintf(w, "max_value: %.4f\n", max)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintf(w, "(space) = below cutoff  %s = rising field magnitude\n", string(chargeRamp[1:]))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Map ---")
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			fmt.Fprintf(w, "%c", chargeSymbol(c.FieldAt(x, y), max))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "=== END MAP DUMP ===")
}

// WriteVoronoi writes a full debug dump of a region map: metadata, legend,
// the region grid, and each region's origin, size and neighbour ids.
func WriteVoronoi(w io.Writer, v *mapgen.Voronoi) {
	fmt.Fprintln(w, "=== MAP DUMP (voronoi regions) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "width: %d\n", v.Width())
	fmt.Fprintf(w, "height: %d\n", v.Height())
	fmt.Fprintf(w, "regions: %d\n", v.NumRegions())
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "A..Z = region id (cycled)  . = unclaimed")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Map ---")
	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			fmt.Fprintf(w, "%c", regionSymbol(v.RegionAt(x, y)))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Regions (id, origin, cells, neighbours) ---")
	for id := 1; id <= v.NumRegions(); id++ {
		area := v.Region(id)
		origin := area.Origin()
		fmt.Fprintf(w, "  id: %d origin: %d,%d cells: %d neighbours: %v\n",
			id, origin.X, origin.Y, len(area.Positions()), area.Neighbours())
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "=== END MAP DUMP ===")
}

// DumpToFile writes a map dump to map.txt in the working directory and
// returns the absolute path written.
func DumpToFile(write func(io.Writer)) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	write(f)

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
