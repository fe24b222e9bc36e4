package models_test

import (
	"encoding/json"
	"testing"

	"github.com/ADML003/analytics-dashboard/internal/models"
)

func TestDerivedRatiosRecompute(t *testing.T) {
	c := models.CampaignRecord{
		Budget: 15000, Spent: 12450,
		Impressions: 125000, Clicks: 3750, Conversions: 187,
		Revenue: 28050,
	}
	if got := c.CTR(); got != 3.0 {
		t.Fatalf("CTR: expected 3.0, got %v", got)
	}
	if got := c.CPC(); got != 3.32 {
		t.Fatalf("CPC: expected 3.32, got %v", got)
	}
	if got := c.ROAS(); got != 2.25 {
		t.Fatalf("ROAS: expected 2.25, got %v", got)
	}
	if got := c.BudgetUtilization(); got != 83 {
		t.Fatalf("BudgetUtilization: expected 83, got %v", got)
	}
}

func TestDerivedRatiosZeroGuards(t *testing.T) {
	// A draft campaign has all-zero counters and spend.
	var c models.CampaignRecord
	c.Budget = 25000
	if c.CTR() != 0 || c.CPC() != 0 || c.ROAS() != 0 || c.BudgetUtilization() != 0 {
		t.Fatalf("expected all derived ratios to be 0, got ctr=%v cpc=%v roas=%v util=%v",
			c.CTR(), c.CPC(), c.ROAS(), c.BudgetUtilization())
	}
}

func TestDerivedRatiosRoundHalfAwayFromZero(t *testing.T) {
	// Refunds can push revenue negative; rounding must not pull the
	// ratio toward zero.
	c := models.CampaignRecord{Spent: 1000, Revenue: -1236}
	if got := c.ROAS(); got != -1.24 {
		t.Fatalf("ROAS: expected -1.24, got %v", got)
	}
	c = models.CampaignRecord{Spent: -12.36, Clicks: 10}
	if got := c.CPC(); got != -1.24 {
		t.Fatalf("CPC: expected -1.24, got %v", got)
	}
}

func TestOverspendUtilizationOver100(t *testing.T) {
	c := models.CampaignRecord{Budget: 1000, Spent: 1200}
	if got := c.BudgetUtilization(); got != 120 {
		t.Fatalf("expected 120, got %v", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := models.MustDate("2024-07-01")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-07-01"` {
		t.Fatalf("unexpected marshal output: %s", b)
	}
	var back models.Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v != %v", back, d)
	}
}

func TestDateUnmarshalEmpty(t *testing.T) {
	var d models.Date
	if err := json.Unmarshal([]byte(`""`), &d); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("expected zero date, got %v", d)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := models.ParseDate("07/01/2024"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestMetricCardFormattedValue(t *testing.T) {
	cases := []struct {
		card models.MetricCard
		want string
	}{
		{models.MetricCard{Value: 284750, Format: models.FormatAsCurrency}, "$284,750"},
		{models.MetricCard{Value: 48920, Format: models.FormatAsNumber}, "48,920"},
		{models.MetricCard{Value: 23.4, Format: models.FormatAsPercentage}, "23.4%"},
	}
	for _, c := range cases {
		if got := c.card.FormattedValue(); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}
