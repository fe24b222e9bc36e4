package store_test

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/ADML003/analytics-dashboard/internal/fixtures"
	"github.com/ADML003/analytics-dashboard/internal/models"
	"github.com/ADML003/analytics-dashboard/internal/source"
	"github.com/ADML003/analytics-dashboard/internal/store"
)

func fixtureStore() *store.SessionStore {
	return store.NewSessionStore(source.Dataset{
		Campaigns:      fixtures.Campaigns(),
		ChartData:      fixtures.ChartDataFrom(time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC), rand.New(rand.NewSource(1))),
		Metrics:        fixtures.Metrics(),
		TrafficSources: fixtures.TrafficSources(),
	})
}

func TestSnapshotsDoNotAliasStore(t *testing.T) {
	s := fixtureStore()

	snap := s.Campaigns()
	if len(snap) != 25 {
		t.Fatalf("expected 25 campaigns, got %d", len(snap))
	}
	snap[0].Name = "mutated"
	if got := s.Campaigns()[0].Name; got != "Summer Sale 2024" {
		t.Fatalf("store leaked its backing slice: %q", got)
	}

	chart := s.ChartData()
	chart[0].Revenue = -1
	if s.ChartData()[0].Revenue == -1 {
		t.Fatalf("chart snapshot aliases the store")
	}
}

func TestQueryCampaigns(t *testing.T) {
	s := fixtureStore()

	active := s.QueryCampaigns(func(c models.CampaignRecord) bool {
		return c.Status == models.StatusActive
	})
	for _, c := range active {
		if c.Status != models.StatusActive {
			t.Fatalf("query returned %s with status %s", c.ID, c.Status)
		}
	}
	if len(active) == 0 || len(active) == 25 {
		t.Fatalf("predicate had no effect: %d matches", len(active))
	}

	all := s.QueryCampaigns(nil)
	if len(all) != 25 {
		t.Fatalf("nil predicate should match everything, got %d", len(all))
	}
	for i, want := range fixtures.Campaigns() {
		if all[i].ID != want.ID {
			t.Fatalf("query reordered records at %d: got %s, want %s", i, all[i].ID, want.ID)
		}
	}
}

func TestUpdateChartReplacesSeries(t *testing.T) {
	s := fixtureStore()
	before := s.ChartData()

	s.UpdateChart(fixtures.SimulateRealTime)

	after := s.ChartData()
	if len(after) != len(before) {
		t.Fatalf("update changed series length from %d to %d", len(before), len(after))
	}
	for i := range after {
		if after[i].Date != before[i].Date {
			t.Fatalf("point %d lost its date", i)
		}
	}
}

func TestConcurrentReadersAndWriter(t *testing.T) {
	s := fixtureStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.Campaigns()
				_ = s.ChartData()
				_ = s.QueryCampaigns(func(c models.CampaignRecord) bool { return c.Budget > 5000 })
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			s.UpdateChart(fixtures.SimulateRealTime)
		}
	}()
	wg.Wait()

	if len(s.ChartData()) != 30 {
		t.Fatalf("series corrupted under concurrency")
	}
}
