package analytics_test

import (
	"testing"

	"github.com/ADML003/analytics-dashboard/internal/analytics"
	"github.com/ADML003/analytics-dashboard/internal/fixtures"
	"github.com/ADML003/analytics-dashboard/internal/models"
)

func TestSortCampaignsByBudget(t *testing.T) {
	records := fixtures.Campaigns()

	asc := analytics.SortCampaigns(records, analytics.SortByBudget, false)
	for i := 1; i < len(asc); i++ {
		if asc[i].Budget < asc[i-1].Budget {
			t.Fatalf("ascending sort out of order at %d: %.0f before %.0f", i, asc[i-1].Budget, asc[i].Budget)
		}
	}

	desc := analytics.SortCampaigns(records, analytics.SortByBudget, true)
	for i := 1; i < len(desc); i++ {
		if desc[i].Budget > desc[i-1].Budget {
			t.Fatalf("descending sort out of order at %d", i)
		}
	}

	// the input slice is never reordered in place
	if records[0].ID != "1" || records[len(records)-1].ID != "25" {
		t.Fatalf("input slice mutated by sort")
	}
}

func TestSortCampaignsStable(t *testing.T) {
	records := []models.CampaignRecord{
		{ID: "a", Name: "First", Budget: 100},
		{ID: "b", Name: "Second", Budget: 100},
		{ID: "c", Name: "Third", Budget: 50},
	}
	out := analytics.SortCampaigns(records, analytics.SortByBudget, false)
	if out[0].ID != "c" || out[1].ID != "a" || out[2].ID != "b" {
		t.Fatalf("equal budgets should keep input order, got %s %s %s", out[0].ID, out[1].ID, out[2].ID)
	}
}

func TestSortCampaignsUnknownKey(t *testing.T) {
	records := fixtures.Campaigns()
	out := analytics.SortCampaigns(records, analytics.SortKey("bogus"), false)
	for i := range out {
		if out[i].ID != records[i].ID {
			t.Fatalf("unknown key reordered records at %d", i)
		}
	}
}

func TestSortCampaignsByDerivedROAS(t *testing.T) {
	out := analytics.SortCampaigns(fixtures.Campaigns(), analytics.SortByROAS, true)
	for i := 1; i < len(out); i++ {
		if out[i].ROAS() > out[i-1].ROAS() {
			t.Fatalf("roas sort out of order at %d: %.2f after %.2f", i, out[i].ROAS(), out[i-1].ROAS())
		}
	}
}

func TestSearchCampaigns(t *testing.T) {
	records := fixtures.Campaigns()

	hits := analytics.SearchCampaigns(records, "SUMMER")
	if len(hits) != 1 || hits[0].Name != "Summer Sale 2024" {
		t.Fatalf("search SUMMER: expected Summer Sale 2024, got %d hits", len(hits))
	}

	// platform text is searchable too
	hits = analytics.SearchCampaigns(records, "google")
	if len(hits) == 0 {
		t.Fatalf("search google: expected platform matches")
	}
	for _, c := range hits {
		if c.Platform != models.PlatformGoogleAds {
			t.Fatalf("search google matched %q on platform %q", c.Name, c.Platform)
		}
	}

	if got := analytics.SearchCampaigns(records, ""); len(got) != len(records) {
		t.Fatalf("empty query should match everything, got %d of %d", len(got), len(records))
	}

	if got := analytics.SearchCampaigns(records, "no such campaign"); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}
