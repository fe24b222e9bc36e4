package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ADML003/analytics-dashboard/internal/models"
)

func newTrafficCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "traffic",
		Short: "Show the traffic source breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			sources := a.store.TrafficSources()
			t := tablewriter.NewWriter(out)
			t.SetHeader([]string{"Source", "Visitors", "Share"})
			total := 0
			for _, s := range sources {
				total += s.Visitors
				t.Append([]string{
					s.Source,
					models.FormatNumber(float64(s.Visitors)),
					models.FormatDecimal(s.Percentage) + "%",
				})
			}
			t.Render()
			fmt.Fprintf(out, "Total visitors: %s\n", models.FormatNumber(float64(total)))
			return nil
		},
	}
}
