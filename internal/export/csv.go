package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/ADML003/analytics-dashboard/internal/analytics"
	"github.com/ADML003/analytics-dashboard/internal/models"
)

// Filename builds the dated export name: <dataset>-<YYYY-MM-DD>.csv.
func Filename(dataset string, t time.Time) string {
	return fmt.Sprintf("%s-%s.csv", dataset, t.Format("2006-01-02"))
}

// CampaignsCSV serializes campaigns with display column titles. Amounts
// and counters stay raw numerics; the ratio columns carry the display
// forms ("3%", "$3.32", "2.25x"), recomputed from the raw counters.
// Empty input yields the header row alone.
func CampaignsCSV(records []models.CampaignRecord) (string, error) {
	rows := [][]string{{
		"Campaign", "Platform", "Status", "Budget", "Spent",
		"Impressions", "Clicks", "Conversions", "Revenue",
		"CTR", "CPC", "ROAS", "Start Date", "End Date",
	}}
	for _, c := range records {
		rows = append(rows, []string{
			c.Name,
			string(c.Platform),
			string(c.Status),
			models.FormatDecimal(c.Budget),
			models.FormatDecimal(c.Spent),
			strconv.Itoa(c.Impressions),
			strconv.Itoa(c.Clicks),
			strconv.Itoa(c.Conversions),
			models.FormatDecimal(c.Revenue),
			models.FormatDecimal(c.CTR()) + "%",
			"$" + models.FormatDecimal(c.CPC()),
			models.FormatRatio(c.ROAS()),
			c.StartDate.String(),
			c.EndDate.String(),
		})
	}
	return writeCSV(rows)
}

// ChartCSV serializes the daily time series.
func ChartCSV(points []models.ChartDataPoint) (string, error) {
	rows := [][]string{{
		"Date", "Revenue", "Users", "Conversions",
		"Impressions", "Clicks", "CTR", "CPC", "ROAS",
	}}
	for _, p := range points {
		rows = append(rows, []string{
			p.Date.String(),
			strconv.Itoa(p.Revenue),
			strconv.Itoa(p.Users),
			strconv.Itoa(p.Conversions),
			strconv.Itoa(p.Impressions),
			strconv.Itoa(p.Clicks),
			models.FormatDecimal(p.CTR) + "%",
			"$" + models.FormatDecimal(p.CPC),
			models.FormatRatio(p.ROAS),
		})
	}
	return writeCSV(rows)
}

// MetricsCSV serializes the KPI cards.
func MetricsCSV(cards []models.MetricCard) (string, error) {
	rows := [][]string{{"ID", "Title", "Value", "Change", "Change Type", "Color", "Format"}}
	for _, m := range cards {
		rows = append(rows, []string{
			m.ID,
			m.Title,
			models.FormatDecimal(m.Value),
			models.FormatDecimal(m.Change) + "%",
			string(m.ChangeType),
			m.Color,
			string(m.Format),
		})
	}
	return writeCSV(rows)
}

// TrafficCSV serializes the traffic source breakdown.
func TrafficCSV(sources []models.TrafficSource) (string, error) {
	rows := [][]string{{"Source", "Visitors", "Percentage"}}
	for _, s := range sources {
		rows = append(rows, []string{
			s.Source,
			strconv.Itoa(s.Visitors),
			models.FormatDecimal(s.Percentage) + "%",
		})
	}
	return writeCSV(rows)
}

// SummaryCSV serializes a filtered-set summary as a single row.
func SummaryCSV(s analytics.Summary) (string, error) {
	rows := [][]string{
		{
			"Total Budget", "Total Spent", "Total Revenue", "Total Conversions",
			"Average ROAS", "Average CTR (%)", "Average CPC",
			"Conversion Rate (%)", "Budget Utilization (%)",
		},
		{
			models.FormatDecimal(s.TotalBudget),
			models.FormatDecimal(s.TotalSpent),
			models.FormatDecimal(s.TotalRevenue),
			strconv.Itoa(s.TotalConversions),
			fixed2(s.AvgROAS),
			fixed2(s.AvgCTR),
			fixed2(s.AvgCPC),
			fixed2(s.ConversionRate),
			fixed2(s.BudgetUtilization),
		},
	}
	return writeCSV(rows)
}

func fixed2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func writeCSV(rows [][]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return buf.String(), nil
}
