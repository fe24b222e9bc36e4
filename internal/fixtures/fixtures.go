// Package fixtures is the mock upstream data source: it produces the
// record collections the dashboard session is seeded with. Nothing in
// the core depends on how these are generated.
package fixtures

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ADML003/analytics-dashboard/internal/models"
)

func Metrics() []models.MetricCard {
	return []models.MetricCard{
		{ID: "revenue", Title: "Total Revenue", Value: 284750, Change: 12.5, ChangeType: models.ChangeIncrease, Icon: "DollarSign", Color: "green", Format: models.FormatAsCurrency},
		{ID: "users", Title: "Total Users", Value: 48920, Change: 8.2, ChangeType: models.ChangeIncrease, Icon: "Users", Color: "blue", Format: models.FormatAsNumber},
		{ID: "conversions", Title: "Conversions", Value: 2847, Change: 15.8, ChangeType: models.ChangeIncrease, Icon: "Target", Color: "purple", Format: models.FormatAsNumber},
		{ID: "growth", Title: "Growth Rate", Value: 23.4, Change: 5.2, ChangeType: models.ChangeIncrease, Icon: "TrendingUp", Color: "orange", Format: models.FormatAsPercentage},
	}
}

func campaign(id, name string, p models.Platform, st models.Status,
	budget, spent float64, impressions, clicks, conversions int,
	revenue, ctr, cpc, roas float64, start, end string) models.CampaignRecord {
	return models.CampaignRecord{
		ID: id, Name: name, Platform: p, Status: st,
		Budget: budget, Spent: spent,
		Impressions: impressions, Clicks: clicks, Conversions: conversions,
		Revenue: revenue, StoredCTR: ctr, StoredCPC: cpc, StoredROAS: roas,
		StartDate: models.MustDate(start), EndDate: models.MustDate(end),
	}
}

// Campaigns is the 25-campaign demo dataset.
func Campaigns() []models.CampaignRecord {
	return []models.CampaignRecord{
		campaign("1", "Summer Sale 2024", models.PlatformGoogleAds, models.StatusActive, 15000, 12450, 125000, 3750, 187, 28050, 3.0, 3.32, 2.25, "2024-07-01", "2024-08-31"),
		campaign("2", "Brand Awareness Q3", models.PlatformFacebook, models.StatusActive, 8000, 6750, 89000, 2670, 134, 16080, 3.0, 2.53, 2.38, "2024-07-01", "2024-09-30"),
		campaign("3", "LinkedIn B2B Lead Gen", models.PlatformLinkedIn, models.StatusActive, 5000, 4200, 25000, 750, 45, 13500, 3.0, 5.6, 3.21, "2024-06-15", "2024-08-15"),
		campaign("4", "Instagram Stories Promo", models.PlatformInstagram, models.StatusCompleted, 3000, 3000, 67000, 2010, 98, 11760, 3.0, 1.49, 3.92, "2024-06-01", "2024-06-30"),
		campaign("5", "YouTube Video Ads", models.PlatformYouTube, models.StatusActive, 10000, 7500, 150000, 4500, 225, 31500, 3.0, 1.67, 4.2, "2024-07-15", "2024-08-31"),
		campaign("6", "TikTok Gen Z Campaign", models.PlatformTikTok, models.StatusPaused, 4000, 2800, 95000, 3800, 152, 9120, 4.0, 0.74, 3.26, "2024-06-20", "2024-07-20"),
		campaign("7", "Black Friday Early Bird", models.PlatformGoogleAds, models.StatusDraft, 25000, 0, 0, 0, 0, 0, 0, 0, 0, "2024-11-15", "2024-11-30"),
		campaign("8", "Instagram Reels Q4", models.PlatformInstagram, models.StatusActive, 12000, 8900, 145000, 4350, 218, 32700, 3.0, 2.05, 3.67, "2024-10-01", "2024-12-31"),
		campaign("9", "LinkedIn Executive Targeting", models.PlatformLinkedIn, models.StatusActive, 8000, 5600, 28000, 840, 67, 20100, 3.0, 6.67, 3.59, "2024-09-01", "2024-11-30"),
		campaign("10", "Facebook Lookalike Audience", models.PlatformFacebook, models.StatusActive, 15000, 11200, 187000, 5610, 281, 42150, 3.0, 2.0, 3.76, "2024-08-15", "2024-10-31"),
		campaign("11", "YouTube Product Demo", models.PlatformYouTube, models.StatusCompleted, 7000, 7000, 98000, 2940, 147, 22050, 3.0, 2.38, 3.15, "2024-05-01", "2024-05-31"),
		campaign("12", "TikTok Trend Challenge", models.PlatformTikTok, models.StatusActive, 6000, 4200, 210000, 8400, 336, 20160, 4.0, 0.5, 4.8, "2024-09-15", "2024-11-15"),
		campaign("13", "Google Shopping Holiday", models.PlatformGoogleAds, models.StatusActive, 20000, 15600, 156000, 4680, 234, 46800, 3.0, 3.33, 3.0, "2024-10-15", "2024-12-25"),
		campaign("14", "Facebook Dynamic Retargeting", models.PlatformFacebook, models.StatusActive, 9000, 6750, 112500, 3375, 202, 30300, 3.0, 2.0, 4.49, "2024-08-01", "2024-10-31"),
		campaign("15", "LinkedIn Sponsored Content", models.PlatformLinkedIn, models.StatusPaused, 5000, 3500, 17500, 525, 35, 10500, 3.0, 6.67, 3.0, "2024-07-01", "2024-08-31"),
		campaign("16", "Instagram Stories AR Filter", models.PlatformInstagram, models.StatusCompleted, 4000, 4000, 80000, 2400, 120, 18000, 3.0, 1.67, 4.5, "2024-06-01", "2024-06-30"),
		campaign("17", "YouTube Shorts Experiment", models.PlatformYouTube, models.StatusActive, 8000, 5600, 112000, 3360, 168, 25200, 3.0, 1.67, 4.5, "2024-09-01", "2024-11-30"),
		campaign("18", "TikTok Influencer Collab", models.PlatformTikTok, models.StatusCompleted, 12000, 12000, 300000, 12000, 600, 36000, 4.0, 1.0, 3.0, "2024-07-01", "2024-07-31"),
		campaign("19", "Google Display Remarketing", models.PlatformGoogleAds, models.StatusActive, 10000, 7800, 130000, 3900, 195, 29250, 3.0, 2.0, 3.75, "2024-09-01", "2024-11-30"),
		campaign("20", "Facebook Lead Generation", models.PlatformFacebook, models.StatusActive, 11000, 8250, 137500, 4125, 248, 37200, 3.0, 2.0, 4.51, "2024-08-15", "2024-10-31"),
		campaign("21", "LinkedIn Video Ads", models.PlatformLinkedIn, models.StatusDraft, 6000, 0, 0, 0, 0, 0, 0, 0, 0, "2024-11-01", "2024-12-31"),
		campaign("22", "Instagram Shopping Tags", models.PlatformInstagram, models.StatusActive, 9500, 7125, 118750, 3562, 214, 32100, 3.0, 2.0, 4.51, "2024-09-01", "2024-11-30"),
		campaign("23", "YouTube Brand Awareness", models.PlatformYouTube, models.StatusPaused, 15000, 10500, 175000, 5250, 262, 39375, 3.0, 2.0, 3.75, "2024-07-15", "2024-09-15"),
		campaign("24", "TikTok Dance Challenge", models.PlatformTikTok, models.StatusCompleted, 8000, 8000, 400000, 16000, 800, 24000, 4.0, 0.5, 3.0, "2024-06-15", "2024-07-15"),
		campaign("25", "Google Performance Max", models.PlatformGoogleAds, models.StatusActive, 18000, 13500, 180000, 5400, 270, 54000, 3.0, 2.5, 4.0, "2024-10-01", "2024-12-31"),
	}
}

func TrafficSources() []models.TrafficSource {
	return []models.TrafficSource{
		{Source: "Organic Search", Visitors: 18420, Percentage: 42.1, Color: "#2980b9"},
		{Source: "Paid Search", Visitors: 12680, Percentage: 29.0, Color: "#2ecc71"},
		{Source: "Social Media", Visitors: 7350, Percentage: 16.8, Color: "#9b59b6"},
		{Source: "Direct", Visitors: 3920, Percentage: 9.0, Color: "#e67e22"},
		{Source: "Email", Visitors: 1380, Percentage: 3.1, Color: "#e74c3c"},
	}
}

// ChartData generates the trailing 30-day time series ending today,
// one point per calendar day, with weekend traffic dampened.
func ChartData() []models.ChartDataPoint {
	return ChartDataFrom(time.Now(), rand.New(rand.NewSource(time.Now().UnixNano())))
}

func ChartDataFrom(now time.Time, rng *rand.Rand) []models.ChartDataPoint {
	points := make([]models.ChartDataPoint, 0, 30)
	start := now.AddDate(0, 0, -30)
	for i := 0; i < 30; i++ {
		day := start.AddDate(0, 0, i)
		baseRevenue := 8000 + rng.Float64()*4000
		baseUsers := 1200 + rng.Float64()*800
		mult := 1.0
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			mult = 0.7
		}
		users := baseUsers * mult
		points = append(points, models.ChartDataPoint{
			Date:        models.DateOf(day),
			Revenue:     int(baseRevenue*mult + 0.5),
			Users:       int(users + 0.5),
			Conversions: int(users*(0.05+rng.Float64()*0.03) + 0.5),
			Impressions: int(users*15 + 0.5),
			Clicks:      int(users*2.5 + 0.5),
			CTR:         roundTo(2.5/15*100+rng.Float64()*2, 2),
			CPC:         roundTo(1.2+rng.Float64()*0.8, 2),
			ROAS:        roundTo(3.2+rng.Float64()*1.8, 1),
		})
	}
	return points
}

// SimulateRealTime jitters the series in place-of style: it returns a
// new slice with revenue, users and conversions nudged by small random
// deltas. It is a local mutation helper, not a live feed.
func SimulateRealTime(points []models.ChartDataPoint) []models.ChartDataPoint {
	return simulateRealTime(points, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func simulateRealTime(points []models.ChartDataPoint, rng *rand.Rand) []models.ChartDataPoint {
	out := make([]models.ChartDataPoint, len(points))
	for i, p := range points {
		p.Revenue += rng.Intn(201) - 100
		p.Users += rng.Intn(51) - 25
		p.Conversions += rng.Intn(6) - 2
		out[i] = p
	}
	return out
}

// RandomCampaigns supplements the fixed dataset with n synthetic
// campaigns, useful for exercising large tables and pagination.
func RandomCampaigns(rng *rand.Rand, n int) []models.CampaignRecord {
	platforms := models.Platforms()
	statuses := models.Statuses()
	out := make([]models.CampaignRecord, 0, n)
	for i := 0; i < n; i++ {
		budget := float64(2000 + rng.Intn(23000))
		spent := budget * rng.Float64()
		impressions := 10000 + rng.Intn(390000)
		clicks := int(float64(impressions) * (0.01 + rng.Float64()*0.04))
		conversions := int(float64(clicks) * (0.03 + rng.Float64()*0.05))
		revenue := spent * (1.5 + rng.Float64()*3.5)
		start := time.Date(2024, time.Month(1+rng.Intn(10)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, 14+rng.Intn(75))
		c := models.CampaignRecord{
			ID:          uuid.NewString(),
			Name:        fmt.Sprintf("Generated Campaign %d", i+1),
			Platform:    platforms[rng.Intn(len(platforms))],
			Status:      statuses[rng.Intn(len(statuses))],
			Budget:      budget,
			Spent:       roundTo(spent, 2),
			Impressions: impressions,
			Clicks:      clicks,
			Conversions: conversions,
			Revenue:     roundTo(revenue, 2),
			StartDate:   models.DateOf(start),
			EndDate:     models.DateOf(end),
		}
		c.StoredCTR = c.CTR()
		c.StoredCPC = c.CPC()
		c.StoredROAS = c.ROAS()
		out = append(out, c)
	}
	return out
}

func roundTo(f float64, places int) float64 {
	p := 1.0
	for i := 0; i < places; i++ {
		p *= 10
	}
	return float64(int64(f*p+0.5)) / p
}
