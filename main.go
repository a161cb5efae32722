package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mapforge/pkg/devtools"
	"mapforge/pkg/engine/terminal"
	"mapforge/pkg/mapgen"
)

// legendRows is the number of terminal rows reserved below the map for the
// legend line and the shell prompt.
const legendRows = 3

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	generatorName := flag.String("generator", "walk", "map generator: charge, walk or voronoi")
	seed := flag.Int64("seed", time.Now().UnixNano(), "generator seed")
	width := flag.Int("width", 80, "map width in cells")
	height := flag.Int("height", 21, "map height in cells")

	positives := flag.Int("positive", 30, "charge: number of positive charges")
	negatives := flag.Int("negative", 10, "charge: number of negative charges")
	cutoff := flag.Float64("cutoff", 1.0, "charge: cutoff multiplier applied to the mean field value")

	allowance := flag.Float64("allowance", mapgen.BasicIntersection, "walk: chance to re-enter an already carved cell")
	steps := flag.Int("steps", mapgen.UnlimitedSteps, "walk: step attempts per pass, -1 for until stuck")
	passes := flag.Int("passes", 1, "walk: number of carve passes")

	regions := flag.Int("regions", 10, "voronoi: number of region seed points")

	dump := flag.Bool("dump", false, "write a full map dump to map.txt")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	preview := devtools.NewPreview(!*noColor)
	preview.MaxWidth, preview.MaxHeight = terminal.FitViewport(*width, *height, legendRows)

	start := time.Now()
	var write func(io.Writer)

	switch *generatorName {
	case "charge":
		field, err := mapgen.NewChargeField(*seed, *width, *height, *positives, *negatives, *cutoff)
		if err != nil {
			log.Fatal().Err(err).Msg("charge field configuration rejected")
		}
		preview.RenderChargeField(os.Stdout, field)
		write = func(w io.Writer) { devtools.WriteChargeField(w, field) }

	case "walk":
		walk, err := mapgen.NewDrunkWalk(*seed, *width, *height)
		if err != nil {
			log.Fatal().Err(err).Msg("drunk walk configuration rejected")
		}
		for i := 0; i < *passes; i++ {
			walk.CarveFloor(*steps, *allowance)
		}
		walk.MarkWalls()
		preview.RenderDrunkWalk(os.Stdout, walk)
		write = func(w io.Writer) { devtools.WriteDrunkWalk(w, walk) }

	case "voronoi":
		regionMap, err := mapgen.NewVoronoi(*seed, *width, *height, *regions)
		if err != nil {
			log.Fatal().Err(err).Msg("voronoi configuration rejected")
		}
		preview.RenderVoronoi(os.Stdout, regionMap)
		write = func(w io.Writer) { devtools.WriteVoronoi(w, regionMap) }

	default:
		log.Fatal().Str("generator", *generatorName).Msg("unknown generator, expected charge, walk or voronoi")
	}

	log.Info().
		Str("generator", *generatorName).
		Int64("seed", *seed).
		Int("width", *width).
		Int("height", *height).
		Dur("elapsed", time.Since(start)).
		Msg("map generated")

	if *dump {
		path, err := devtools.DumpToFile(write)
		if err != nil {
			log.Fatal().Err(err).Msg("map dump failed")
		}
		log.Info().Str("path", path).Msg("map dump written")
	}
}
