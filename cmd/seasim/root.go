package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ngmaloney/seastate/internal/database"
)

type rootOptions struct {
	dbPath  string
	verbose bool
	log     *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: logrus.New()}

	cmd := &cobra.Command{
		Use:           "seasim",
		Short:         "Simulate wind-driven irregular seas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.log.SetOutput(cmd.ErrOrStderr())
			opts.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			if opts.verbose {
				opts.log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", database.DBPath(), "path to the preset and run database")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log spectrum and grid rebuilds")

	cmd.AddCommand(
		newRunCmd(opts),
		newSpectrumCmd(opts),
		newPresetsCmd(opts),
		newRunsCmd(opts),
		newConfigCmd(),
	)
	return cmd
}
