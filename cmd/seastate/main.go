package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/seastate/internal/config"
	"github.com/ngmaloney/seastate/internal/database"
	"github.com/ngmaloney/seastate/internal/presets"
	"github.com/ngmaloney/seastate/internal/ui"
)

func main() {
	presetName := flag.String("preset", "", "Name of a preset to load directly (e.g. rough)")
	configPath := flag.String("config", "", "TOML run file supplying [wave] settings")
	dbPath := flag.String("db", database.DBPath(), "Path to the preset database")
	points := flag.Int("points", 32, "Control points per grid edge")
	fps := flag.Int("fps", 10, "Animation frames per second")
	speedup := flag.Float64("speedup", 1, "Simulated seconds per wall-clock second")
	flag.Parse()

	if *fps <= 0 {
		fmt.Println("Error: --fps must be positive.")
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	opts := ui.Options{
		Spectrum:      cfg.SpectrumConfig(),
		ControlPoints: *points,
		Workers:       cfg.Field.Workers,
		FrameInterval: time.Second / time.Duration(*fps),
		TimeScale:     *speedup,
		Preset:        *presetName,
	}

	p := tea.NewProgram(ui.NewModel(presets.NewService(*dbPath), opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
