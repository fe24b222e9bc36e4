package main

import (
	"fmt"
	"log/slog"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ADML003/analytics-dashboard/internal/analytics"
	"github.com/ADML003/analytics-dashboard/internal/export"
	"github.com/ADML003/analytics-dashboard/internal/models"
)

func newCampaignsCmd(a *app) *cobra.Command {
	var (
		in       analytics.FilterInput
		search   string
		sortKey  string
		desc     bool
		page     int
		pageSize int
		doExport bool
	)

	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "Filter, sort and page through the campaign table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			filtered := analytics.FilterCampaigns(a.store.Campaigns(), analytics.ParseFilter(a.log, in))
			filtered = analytics.SearchCampaigns(filtered, search)
			if sortKey != "" {
				k := analytics.SortKey(sortKey)
				if !k.Valid() {
					a.log.Warn("ignoring unknown sort key", slog.String("sort", sortKey))
				} else {
					filtered = analytics.SortCampaigns(filtered, k, desc)
				}
			}

			size := pageSize
			if size < 1 {
				size = a.cfg.PageSize
			}
			pager := analytics.NewPager(size, len(filtered))
			pager.Goto(page - 1) // flags are 1-based
			rows, totalPages := analytics.Paginate(filtered, size, pager.Index())

			t := tablewriter.NewWriter(out)
			t.SetHeader([]string{"Campaign", "Platform", "Status", "Budget", "Spent", "Revenue", "ROAS", "Conversions", "CTR"})
			for _, c := range rows {
				t.Append([]string{
					c.Name,
					string(c.Platform),
					string(c.Status),
					models.FormatCurrency(c.Budget),
					models.FormatCurrency(c.Spent),
					models.FormatCurrency(c.Revenue),
					fmt.Sprintf("%.2fx", c.ROAS()),
					models.FormatNumber(float64(c.Conversions)),
					models.FormatPercent(c.CTR()),
				})
			}
			t.Render()

			from, to := 0, 0
			if len(rows) > 0 {
				from = pager.Index()*size + 1
				to = pager.Index()*size + len(rows)
			}
			fmt.Fprintf(out, "Page %d of %d, showing %d-%d of %d campaigns\n",
				pager.Index()+1, totalPages, from, to, len(filtered))

			sum := analytics.Summarize(filtered)
			printSummary(out, sum)

			if doExport {
				if err := export.FilteredCSV(a.sink, filtered, sum, a.now(), a.stagger()); err != nil {
					a.log.Error("export failed", slog.String("err", err.Error()))
					fmt.Fprintln(out, "Failed to export data. Please try again.")
					return err
				}
				fmt.Fprintf(out, "Filtered analytics data exported to %s\n", a.cfg.ExportDir)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Platform, "platform", "all", "platform filter (Google Ads, Facebook, Instagram, LinkedIn, TikTok, YouTube)")
	cmd.Flags().StringVar(&in.Status, "status", "all", "status filter (Active, Paused, Completed, Draft)")
	cmd.Flags().StringVar(&in.StartDate, "from", "", "campaigns starting on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.EndDate, "to", "", "campaigns ending on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.MinBudget, "min-budget", "", "minimum budget")
	cmd.Flags().StringVar(&in.MaxBudget, "max-budget", "", "maximum budget")
	cmd.Flags().StringVar(&in.MinROAS, "min-roas", "", "minimum ROAS")
	cmd.Flags().StringVar(&in.MaxROAS, "max-roas", "", "maximum ROAS")
	cmd.Flags().StringVar(&search, "search", "", "match campaigns by name, platform or status")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort column (campaign, platform, status, budget, spent, revenue, conversions, ctr, roas, start)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "rows per page (default from config)")
	cmd.Flags().BoolVar(&doExport, "export", false, "export the filtered summary and rows as CSV")
	return cmd
}
