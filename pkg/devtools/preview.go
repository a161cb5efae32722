package devtools

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mapforge/pkg/mapgen"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string
// check, since legend keys are looked up dynamically.
var dynamicGet = gotext.Get

// Preview renders generated maps as colored text for the terminal.
// MaxWidth and MaxHeight clip the rendered viewport (0 means unlimited);
// callers typically fill them from the terminal size.
type Preview struct {
	MaxWidth  int
	MaxHeight int

	colored bool

	colorFloor  color.Style
	colorWall   color.Style
	colorSea    color.Style
	colorLand   color.Style
	colorPeak   color.Style
	colorLegend color.Style
	colorRegion []color.Style
}

// NewPreview creates a preview renderer. Styling is skipped entirely when
// colored is false, for dumb terminals and piped output.
func NewPreview(colored bool) *Preview {
	p := &Preview{colored: colored}

	p.colorFloor = color.Style{color.FgGray}
	p.colorWall = color.Style{color.FgBlue, color.OpBold}
	p.colorSea = color.Style{color.FgBlue}
	p.colorLand = color.Style{color.FgGreen}
	p.colorPeak = color.Style{color.FgGreen, color.OpBold}
	p.colorLegend = color.Style{color.FgGray, color.OpBold}
	p.colorRegion = []color.Style{
		{color.FgRed}, {color.FgGreen}, {color.FgYellow},
		{color.FgBlue}, {color.FgMagenta}, {color.FgCyan},
		{color.FgRed, color.OpBold}, {color.FgGreen, color.OpBold},
		{color.FgYellow, color.OpBold}, {color.FgBlue, color.OpBold},
		{color.FgMagenta, color.OpBold}, {color.FgCyan, color.OpBold},
	}

	return p
}

func (p *Preview) styled(style color.Style, text string) string {
	if !p.colored {
		return text
	}
	return style.Sprint(text)
}

func (p *Preview) viewport(mapWidth, mapHeight int) (int, int) {
	width, height := mapWidth, mapHeight
	if p.MaxWidth > 0 && width > p.MaxWidth {
		width = p.MaxWidth
	}
	if p.MaxHeight > 0 && height > p.MaxHeight {
		height = p.MaxHeight
	}
	return width, height
}

func (p *Preview) legend(w io.Writer, key string) {
	fmt.Fprintln(w, p.styled(p.colorLegend, dynamicGet(key)))
}

// RenderDrunkWalk prints a drunk-walk map with floor and wall styling.
func (p *Preview) RenderDrunkWalk(w io.Writer, d *mapgen.DrunkWalk) {
	width, height := p.viewport(d.Width(), d.Height())

	var row strings.Builder
	for y := 0; y < height; y++ {
		row.Reset()
		for x := 0; x < width; x++ {
			switch d.TileAt(x, y) {
			case mapgen.TileFloor:
				row.WriteString(p.styled(p.colorFloor, "."))
			case mapgen.TileWall:
				row.WriteString(p.styled(p.colorWall, "#"))
			default:
				row.WriteString(" ")
			}
		}
		fmt.Fprintln(w, row.String())
	}

	p.legend(w, "LEGEND_DRUNK_WALK")
}

// RenderChargeField prints a charge field as a density ramp, sea below the
// cutoff and land above it.
func (p *Preview) RenderChargeField(w io.Writer, c *mapgen.ChargeField) {
	width, height := p.viewport(c.Width(), c.Height())
	max := maxField(c)

	var row strings.Builder
	for y := 0; y < height; y++ {
		row.Reset()
		for x := 0; x < width; x++ {
			value := c.FieldAt(x, y)
			glyph := string(chargeSymbol(value, max))
			switch {
			case value <= 0:
				row.WriteString(p.styled(p.colorSea, "~"))
			case value >= max/2:
				row.WriteString(p.styled(p.colorPeak, glyph))
			default:
				row.WriteString(p.styled(p.colorLand, glyph))
			}
		}
		fmt.Fprintln(w, row.String())
	}

	p.legend(w, "LEGEND_CHARGE_FIELD")
}

// RenderVoronoi prints a region map, one letter per region id with a
// cycling color per region.
func (p *Preview) RenderVoronoi(w io.Writer, v *mapgen.Voronoi) {
	width, height := p.viewport(v.Width(), v.Height())

	var row strings.Builder
	for y := 0; y < height; y++ {
		row.Reset()
		for x := 0; x < width; x++ {
			id := v.RegionAt(x, y)
			glyph := string(regionSymbol(id))
			if id <= 0 {
				row.WriteString(glyph)
				continue
			}
			style := p.colorRegion[(id-1)%len(p.colorRegion)]
			row.WriteString(p.styled(style, glyph))
		}
		fmt.Fprintln(w, row.String())
	}

	p.legend(w, "LEGEND_VORONOI")
}
