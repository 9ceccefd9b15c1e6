package commands

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/tabletlab/tablet"
)

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the schematic in every configured format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			vp, err := file.TabletViewport()
			if err != nil {
				return err
			}
			sinks, err := fileSinks(file)
			if err != nil {
				return err
			}

			r := tablet.NewRenderer(vp, tablet.WithSink(sinks))
			r.OnStateChange(file.Snapshot())
			if err := r.Err(); err != nil {
				return err
			}

			paths := file.Output.Paths()
			for _, format := range slices.Sorted(maps.Keys(paths)) {
				fmt.Fprintln(cmd.OutOrStdout(), paths[format])
			}
			return nil
		},
	}
	addGeometryFlags(cmd)
	addOutputFlags(cmd)
	return cmd
}
