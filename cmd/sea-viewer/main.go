//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ngmaloney/seastate/internal/config"
	"github.com/ngmaloney/seastate/internal/database"
	"github.com/ngmaloney/seastate/internal/presets"
	"github.com/ngmaloney/seastate/internal/seasurface"
	"github.com/ngmaloney/seastate/internal/viewer"
	"github.com/ngmaloney/seastate/internal/wave"
)

func main() {
	presetName := flag.String("preset", "moderate", "Preset to display")
	dbPath := flag.String("db", database.DBPath(), "Path to the preset database")
	points := flag.Int("points", 128, "Control points per grid edge")
	scale := flag.Int("scale", 5, "Pixels per control point")
	tps := flag.Int("tps", 30, "Simulation ticks per second")
	flag.Parse()

	p, err := presets.NewService(*dbPath).Get(context.Background(), *presetName)
	if err != nil {
		log.Fatalf("loading preset: %v", err)
	}

	field, err := seasurface.New(seasurface.Config{
		Spectrum:      config.Default().SpectrumConfig(),
		WindFetch:     p.WindFetch,
		WindSpeed:     p.WindSpeed,
		WindDirection: wave.Deg2Rad(p.WindDirection),
		Seed:          p.Seed,
		FieldLength:   p.FieldLength,
		ControlPoints: *points,
	})
	if err != nil {
		log.Fatalf("creating sea surface: %v", err)
	}

	game := viewer.New(field, *scale, 1/float64(*tps))

	ebiten.SetWindowTitle("seastate: " + p.Name)
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(*points**scale, *points**scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
