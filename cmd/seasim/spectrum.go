package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ngmaloney/seastate/internal/config"
	"github.com/ngmaloney/seastate/internal/models"
	"github.com/ngmaloney/seastate/internal/report"
	"github.com/ngmaloney/seastate/internal/wave"
)

func newSpectrumCmd(root *rootOptions) *cobra.Command {
	var (
		configPath string
		hs         float64
		heading    float64
		seed       int64
		plotPath   string
	)
	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Build a spectrum for a given significant wave height and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			spec, err := cfg.SpectrumConfig().Build(hs, wave.Deg2Rad(heading), seed)
			if err != nil {
				return err
			}
			root.log.WithField("components", spec.Len()).Debug("spectrum built")

			s := spec.Summary()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Hs\t%.3f m\t%s\n", s.SignificantWaveHeight, models.ClassifySeaState(s.SignificantWaveHeight))
			fmt.Fprintf(w, "Heading\t%.1f°\t[%.1f°, %.1f°]\n", wave.Rad2Deg(s.MeanHeading), wave.Rad2Deg(s.MinHeading), wave.Rad2Deg(s.MaxHeading))
			fmt.Fprintf(w, "Frequency\t%.4f rad/s\t[%.4f, %.4f]\n", s.PeakFrequency, s.MinFrequency, s.MaxFrequency)
			fmt.Fprintf(w, "Peak period\t%.2f s\t\n", s.PeakPeriod())
			fmt.Fprintf(w, "Components\t%s\t\n", humanize.Comma(int64(s.Components)))
			fmt.Fprintf(w, "Energy\t%s/m²\t\n", humanize.SIWithDigits(s.EnergyDensity, 2, "J"))
			if err := w.Flush(); err != nil {
				return err
			}

			if plotPath == "" {
				return nil
			}
			p, err := report.SpectrumPlot(spec)
			if err != nil {
				return err
			}
			return report.Save(p, plotPath)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "TOML run file supplying the [wave] section")
	f.Float64Var(&hs, "hs", 1, "significant wave height in meters")
	f.Float64Var(&heading, "heading", 0, "mean heading in degrees from North")
	f.Int64Var(&seed, "seed", 1, "phase seed")
	f.StringVar(&plotPath, "plot", "", "save the spectrum plot to this file")
	return cmd
}
