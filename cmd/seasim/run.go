package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ngmaloney/seastate/internal/config"
	"github.com/ngmaloney/seastate/internal/database"
	"github.com/ngmaloney/seastate/internal/export"
	"github.com/ngmaloney/seastate/internal/models"
	"github.com/ngmaloney/seastate/internal/presets"
	"github.com/ngmaloney/seastate/internal/report"
	"github.com/ngmaloney/seastate/internal/sim"
)

type runOptions struct {
	configPath string
	preset     string
	duration   time.Duration
	probeX     float64
	probeY     float64
	points     int
	noRecord   bool

	seriesFile   string
	gridFile     string
	spectrumPlot string
	seriesPlot   string
}

func newRunCmd(root *rootOptions) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step a sea surface through time and record a probe",
		Long: `run builds a sea surface from a TOML run file, a preset or both,
steps it at a fixed frame length and records the elevation at a probe point.
Flags override values from the run file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runSimulation(ctx, cmd, root, o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "TOML run file")
	f.StringVarP(&o.preset, "preset", "p", "", "preset supplying wind, fetch and seed")
	f.DurationVarP(&o.duration, "duration", "d", 0, "simulated time (overrides the run file)")
	f.Float64Var(&o.probeX, "probe-x", 0, "probe x position in meters")
	f.Float64Var(&o.probeY, "probe-y", 0, "probe y position in meters")
	f.IntVar(&o.points, "points", 0, "control points per grid edge")
	f.BoolVar(&o.noRecord, "no-record", false, "do not store the run in the database")
	f.StringVar(&o.seriesFile, "series", "", "write the probe record to this file")
	f.StringVar(&o.gridFile, "grid", "", "write the final control grid to this shapefile")
	f.StringVar(&o.spectrumPlot, "spectrum-plot", "", "save a spectrum plot (png, svg, pdf)")
	f.StringVar(&o.seriesPlot, "series-plot", "", "save a probe record plot (png, svg, pdf)")
	return cmd
}

// applyPreset copies a preset's sea parameters into the run file
func applyPreset(cfg *config.Config, p *models.Preset) {
	cfg.Field.Preset = p.Name
	cfg.Field.WindSpeed = p.WindSpeed
	cfg.Field.WindFetch = p.WindFetch
	cfg.Field.WindDirection = p.WindDirection
	cfg.Field.FieldLength = p.FieldLength
	cfg.Field.Seed = p.Seed
}

func runSimulation(ctx context.Context, cmd *cobra.Command, root *rootOptions, o *runOptions) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}

	presetName := cfg.Field.Preset
	if o.preset != "" {
		presetName = o.preset
	}
	if presetName != "" {
		p, err := presets.NewService(root.dbPath).Get(ctx, presetName)
		if err != nil {
			return err
		}
		applyPreset(&cfg, p)
	}

	flags := cmd.Flags()
	if flags.Changed("duration") {
		cfg.Run.Duration.Duration = o.duration
	}
	if flags.Changed("probe-x") {
		cfg.Run.ProbeX = o.probeX
	}
	if flags.Changed("probe-y") {
		cfg.Run.ProbeY = o.probeY
	}
	if flags.Changed("points") {
		cfg.Field.ControlPoints = o.points
	}
	for _, out := range []struct {
		flag string
		dst  *string
		val  string
	}{
		{"series", &cfg.Run.SeriesFile, o.seriesFile},
		{"grid", &cfg.Run.GridFile, o.gridFile},
		{"spectrum-plot", &cfg.Run.SpectrumPlot, o.spectrumPlot},
		{"series-plot", &cfg.Run.SeriesPlot, o.seriesPlot},
	} {
		if flags.Changed(out.flag) {
			*out.dst = out.val
		}
	}

	var runs *database.RunRepository
	if !o.noRecord {
		dbPath := root.dbPath
		if cfg.Run.Database != "" && !flags.Changed("db") {
			dbPath = cfg.Run.Database
		}
		runs = database.NewRunRepository(dbPath)
	}

	res, err := sim.NewRunner(root.log, runs).Run(ctx, cfg.SimConfig())
	if err != nil {
		return err
	}

	if err := writeOutputs(root.log, cfg.Run, res); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	st := res.Series.Stats()
	fmt.Fprintf(w, "run        %s\n", res.Run.ID)
	fmt.Fprintf(w, "preset     %s\n", orDash(res.Run.PresetName))
	fmt.Fprintf(w, "Hs         %.3f m (%s)\n", res.Run.SignificantWaveHeight, models.ClassifySeaState(res.Run.SignificantWaveHeight))
	fmt.Fprintf(w, "frames     %s in %s\n", humanize.Comma(int64(res.Run.Frames)), res.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "elevation  min %+.3f  max %+.3f  rms %.3f m\n", st.Min, st.Max, st.RMS)
	fmt.Fprintf(w, "record Hs  %.3f m\n", st.SignificantHeight)
	return nil
}

func writeOutputs(log logrus.FieldLogger, out config.Run, res *sim.Result) error {
	if out.SeriesFile != "" {
		if err := export.WriteSeriesFile(out.SeriesFile, &res.Series); err != nil {
			return err
		}
		log.WithField("file", out.SeriesFile).Info("wrote probe record")
	}
	if out.GridFile != "" {
		if err := export.WriteGrid(out.GridFile, res.Field.ControlPoints()); err != nil {
			return err
		}
		log.WithField("file", out.GridFile).Info("wrote control grid")
	}
	if out.SpectrumPlot != "" {
		p, err := report.SpectrumPlot(res.Field.Spectrum())
		if err != nil {
			return err
		}
		if err := report.Save(p, out.SpectrumPlot); err != nil {
			return err
		}
		log.WithField("file", out.SpectrumPlot).Info("wrote spectrum plot")
	}
	if out.SeriesPlot != "" {
		p, err := report.SeriesPlot(&res.Series)
		if err != nil {
			return err
		}
		if err := report.Save(p, out.SeriesPlot); err != nil {
			return err
		}
		log.WithField("file", out.SeriesPlot).Info("wrote probe plot")
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
