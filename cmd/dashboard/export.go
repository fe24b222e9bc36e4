package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ADML003/analytics-dashboard/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export dashboard data as CSV files or a PDF report",
	}
	cmd.AddCommand(newExportCSVCmd(a), newExportReportCmd(a), newExportAllCmd(a))
	return cmd
}

func newExportCSVCmd(a *app) *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export one dataset as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				doc  string
				err  error
				name string
			)
			switch dataset {
			case "campaigns":
				doc, err = export.CampaignsCSV(a.store.Campaigns())
				name = "campaign-data"
			case "chart":
				doc, err = export.ChartCSV(a.store.ChartData())
				name = "analytics-data"
			case "metrics":
				doc, err = export.MetricsCSV(a.store.Metrics())
				name = "metrics"
			case "traffic":
				doc, err = export.TrafficCSV(a.store.TrafficSources())
				name = "traffic-sources"
			default:
				return fmt.Errorf("unknown dataset %q (campaigns, chart, metrics, traffic)", dataset)
			}
			if err != nil {
				return err
			}
			filename := export.Filename(name, a.now())
			if err := a.notifySaveErr(cmd, a.sink.Save([]byte(doc), filename, "text/csv")); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", filename, a.cfg.ExportDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataset, "dataset", "campaigns", "dataset to export (campaigns, chart, metrics, traffic)")
	return cmd
}

func newExportReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Export the full dashboard as a paginated PDF report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := a.now()
			doc, err := export.Report(a.cfg.ReportTitle, now, export.ReportData{
				Metrics:   a.store.Metrics(),
				Campaigns: a.store.Campaigns(),
				Traffic:   a.store.TrafficSources(),
			})
			if err != nil {
				return err
			}
			filename := export.ReportFilename(now)
			if err := a.notifySaveErr(cmd, a.sink.Save(doc, filename, "application/pdf")); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", filename, a.cfg.ExportDir)
			return nil
		},
	}
}

func newExportAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Export every dashboard dataset as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := export.AllCSV(a.sink, export.Bundle{
				Metrics:   a.store.Metrics(),
				Campaigns: a.store.Campaigns(),
				Chart:     a.store.ChartData(),
				Traffic:   a.store.TrafficSources(),
			}, a.now(), a.stagger())
			if err := a.notifySaveErr(cmd, err); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported all dashboard data to %s\n", a.cfg.ExportDir)
			return nil
		},
	}
}

// notifySaveErr turns an export failure into a visible notification;
// the command still exits non-zero but never panics or leaves partial
// output behind (saves are atomic).
func (a *app) notifySaveErr(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	a.log.Error("export failed", slog.String("err", err.Error()))
	fmt.Fprintln(cmd.OutOrStdout(), "Failed to export data. Please try again.")
	return err
}
