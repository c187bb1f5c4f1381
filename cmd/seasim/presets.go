package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ngmaloney/seastate/internal/models"
	"github.com/ngmaloney/seastate/internal/presets"
)

func newPresetsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List, save and delete sea presets",
	}
	cmd.AddCommand(newPresetsListCmd(root), newPresetsSaveCmd(root), newPresetsDeleteCmd(root))
	return cmd
}

func newPresetsListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List presets, optionally filtered by name or description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := presets.NewService(root.dbPath)
			var (
				list []models.Preset
				err  error
			)
			if len(args) == 1 {
				list, err = svc.Search(cmd.Context(), args[0])
			} else {
				list, err = svc.All(cmd.Context())
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tWIND\tFETCH\tHEADING\tSEED\tSOURCE")
			for _, p := range list {
				source := "built-in"
				if p.ID != 0 {
					source = "saved"
				}
				fmt.Fprintf(w, "%s\t%.1f m/s\t%.0f m\t%.0f°\t%d\t%s\n",
					p.Name, p.WindSpeed, p.WindFetch, p.WindDirection, p.Seed, source)
			}
			return w.Flush()
		},
	}
}

func newPresetsSaveCmd(root *rootOptions) *cobra.Command {
	p := models.Preset{}
	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save a preset, replacing any saved preset of the same name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Name = strings.TrimSpace(args[0])
			if err := presets.NewService(root.dbPath).Save(cmd.Context(), &p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved preset %s (id %d)\n", p.Name, p.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&p.Description, "description", "", "short description")
	f.Float64Var(&p.WindSpeed, "wind-speed", 10, "wind speed in m/s")
	f.Float64Var(&p.WindFetch, "wind-fetch", 1000, "wind fetch in meters")
	f.Float64Var(&p.WindDirection, "wind-direction", 0, "wind direction in degrees from North")
	f.Float64Var(&p.FieldLength, "field-length", 0, "field edge length in meters, 0 for the full fetch")
	f.Int64Var(&p.Seed, "seed", 1, "phase seed")
	return cmd
}

func newPresetsDeleteCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := presets.NewService(root.dbPath).Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted preset %s\n", args[0])
			return nil
		},
	}
}
