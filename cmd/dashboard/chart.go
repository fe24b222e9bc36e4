package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/ADML003/analytics-dashboard/internal/fixtures"
	"github.com/ADML003/analytics-dashboard/internal/models"
)

func newChartCmd(a *app) *cobra.Command {
	var (
		metric string
		live   bool
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Plot a daily metric over the last 30 days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if live {
				a.store.UpdateChart(fixtures.SimulateRealTime)
			}
			points := a.store.ChartData()
			if len(points) == 0 {
				fmt.Fprintln(out, "No chart data available.")
				return nil
			}

			series, err := chartSeries(points, metric)
			if err != nil {
				return err
			}
			caption := fmt.Sprintf("%s, %s to %s", metric,
				points[0].Date, points[len(points)-1].Date)
			fmt.Fprintln(out, asciigraph.Plot(series,
				asciigraph.Height(12),
				asciigraph.Width(72),
				asciigraph.Caption(caption),
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&metric, "metric", "revenue", "series to plot (revenue, users, conversions, impressions, clicks, ctr, cpc, roas)")
	cmd.Flags().BoolVar(&live, "live", false, "apply one round of simulated real-time jitter before plotting")
	return cmd
}

func chartSeries(points []models.ChartDataPoint, metric string) ([]float64, error) {
	out := make([]float64, len(points))
	for i, p := range points {
		switch metric {
		case "revenue":
			out[i] = float64(p.Revenue)
		case "users":
			out[i] = float64(p.Users)
		case "conversions":
			out[i] = float64(p.Conversions)
		case "impressions":
			out[i] = float64(p.Impressions)
		case "clicks":
			out[i] = float64(p.Clicks)
		case "ctr":
			out[i] = p.CTR
		case "cpc":
			out[i] = p.CPC
		case "roas":
			out[i] = p.ROAS
		default:
			return nil, fmt.Errorf("unknown chart metric %q", metric)
		}
	}
	return out, nil
}
