package commands

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tabletlab/tablet"
	"github.com/tabletlab/tablet/internal/watch"
	"github.com/tabletlab/tablet/store"
)

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render whenever the geometry file changes",
		Long: `Render once, then re-render every time the file given with --config is
saved. Only the tablet and annotation sections are reloaded; viewport and
output settings are read at startup. A file that fails to load is reported
and the previous drawing is kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return errors.New("watch: --config is required")
			}
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

			w, err := watch.New(configPath, 0)
			if err != nil {
				return err
			}

			st := store.New(file.Snapshot())
			unsubscribe := st.Subscribe(tablet.NewRenderer(vp, tablet.WithSink(sinks)))
			defer unsubscribe()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := tablet.Logger().With("path", w.Path())
			log.Info("tabletgraphic: watching")
			return w.Run(ctx, func() {
				next, err := loadConfig(cmd)
				if err != nil {
					log.Warn("tabletgraphic: reload failed, keeping previous drawing", "err", err)
					return
				}
				st.Dispatch(store.Replace(next.Snapshot()))
			})
		},
	}
	addGeometryFlags(cmd)
	addOutputFlags(cmd)
	return cmd
}
