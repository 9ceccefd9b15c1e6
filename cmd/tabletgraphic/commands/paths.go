package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabletlab/tablet"
)

func pathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the SVG path data of the four diagram paths",
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

			out := cmd.OutOrStdout()
			r := tablet.NewRenderer(vp, tablet.WithSink(tablet.SinkFunc(func(f tablet.Frame) error {
				for _, in := range f.Instructions {
					if _, err := fmt.Fprintf(out, "%s %s\t%s\n", in.View, in.Role, in.D); err != nil {
						return err
					}
				}
				return nil
			})))
			r.OnStateChange(file.Snapshot())
			return r.Err()
		},
	}
	addGeometryFlags(cmd)
	return cmd
}
