package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ADML003/analytics-dashboard/internal/analytics"
	"github.com/ADML003/analytics-dashboard/internal/models"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the KPI cards and the all-campaign summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			cards := a.store.Metrics()
			t := tablewriter.NewWriter(out)
			t.SetHeader([]string{"Metric", "Value", "Change", "Trend"})
			for _, m := range cards {
				t.Append([]string{
					m.Title,
					m.FormattedValue(),
					models.FormatSignedPercent(m.Change),
					models.ChangeGlyph(m.ChangeType),
				})
			}
			t.Render()

			printSummary(out, analytics.Summarize(a.store.Campaigns()))
			return nil
		},
	}
}

func printSummary(w io.Writer, s analytics.Summary) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Revenue", "Spent", "Avg ROAS", "Avg CTR", "Avg CPC", "Conversions", "Conv. Rate", "Budget Used"})
	t.Append([]string{
		models.FormatCurrency(s.TotalRevenue),
		models.FormatCurrency(s.TotalSpent),
		fmt.Sprintf("%.2fx", s.AvgROAS),
		fmt.Sprintf("%.2f%%", s.AvgCTR),
		models.FormatCurrency(s.AvgCPC),
		models.FormatNumber(float64(s.TotalConversions)),
		fmt.Sprintf("%.2f%%", s.ConversionRate),
		fmt.Sprintf("%.1f%%", s.BudgetUtilization),
	})
	t.Render()
}
