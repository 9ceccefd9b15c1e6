package commands

import (
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/tabletlab/tablet"
)

var (
	configPath string
	verbose    bool
)

// Execute runs the tabletgraphic command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tabletgraphic",
		Short:        "Draw top and side schematics of pharmaceutical tablets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			l := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			tablet.SetLogger(l)
			gg.SetLogger(l.With("component", "gg"))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "geometry file (YAML)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(renderCmd(), watchCmd(), pathsCmd())
	return root
}
