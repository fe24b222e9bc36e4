package analytics

import "github.com/ADML003/analytics-dashboard/internal/models"

// Summary is the derived KPI snapshot of a filtered campaign set. It is
// recomputed in full on every filter change and never persisted.
type Summary struct {
	TotalBudget      float64
	TotalSpent       float64
	TotalRevenue     float64
	TotalConversions int
	TotalClicks      int
	TotalImpressions int

	AvgROAS           float64
	AvgCTR            float64
	AvgCPC            float64
	ConversionRate    float64
	BudgetUtilization float64
}

// Summarize sums the campaign counters and derives the aggregate rates.
// Every rate guards its denominator: a zero denominator yields exactly
// 0 for that rate, so an empty input produces an all-zero summary.
func Summarize(records []models.CampaignRecord) Summary {
	var s Summary
	for _, c := range records {
		s.TotalBudget += c.Budget
		s.TotalSpent += c.Spent
		s.TotalRevenue += c.Revenue
		s.TotalConversions += c.Conversions
		s.TotalClicks += c.Clicks
		s.TotalImpressions += c.Impressions
	}
	if s.TotalSpent > 0 {
		s.AvgROAS = s.TotalRevenue / s.TotalSpent
	}
	if s.TotalImpressions > 0 {
		s.AvgCTR = float64(s.TotalClicks) / float64(s.TotalImpressions) * 100
	}
	if s.TotalClicks > 0 {
		s.AvgCPC = s.TotalSpent / float64(s.TotalClicks)
		s.ConversionRate = float64(s.TotalConversions) / float64(s.TotalClicks) * 100
	}
	if s.TotalBudget > 0 {
		s.BudgetUtilization = s.TotalSpent / s.TotalBudget * 100
	}
	return s
}
