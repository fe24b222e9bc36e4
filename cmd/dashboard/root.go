// Command dashboard renders the marketing analytics dashboard in the
// terminal and exports its data as CSV files or a PDF report.
package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ADML003/analytics-dashboard/internal/config"
	"github.com/ADML003/analytics-dashboard/internal/export"
	"github.com/ADML003/analytics-dashboard/internal/source"
	"github.com/ADML003/analytics-dashboard/internal/store"
)

type app struct {
	cfg   config.Config
	log   *slog.Logger
	store *store.SessionStore
	sink  export.FileSink
	now   func() time.Time
}

func (a *app) stagger() time.Duration {
	return time.Duration(a.cfg.ExportStaggerMS) * time.Millisecond
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}
	var cfgPath, dataPath string

	root := &cobra.Command{
		Use:          "dashboard",
		Short:        "Marketing analytics dashboard for the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))

			var prov source.Provider = source.Fixtures{}
			if dataPath != "" {
				prov = source.File{Path: dataPath}
			}
			ds, err := prov.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load dataset: %w", err)
			}
			a.store = store.NewSessionStore(ds)
			a.sink = export.DirSink{Dir: cfg.ExportDir}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a dashboard.yaml config file")
	root.PersistentFlags().StringVar(&dataPath, "data", "", "load the dataset from a JSON file instead of the built-in fixtures")

	root.AddCommand(
		newSummaryCmd(a),
		newCampaignsCmd(a),
		newChartCmd(a),
		newTrafficCmd(a),
		newExportCmd(a),
	)
	return root
}
