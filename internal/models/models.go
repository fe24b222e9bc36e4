// Package models defines the marketing dashboard record shapes and the
// pure display formatters shared by the aggregation and export layers.
package models

import (
	"fmt"
	"math"
	"time"
)

type Platform string

const (
	PlatformGoogleAds Platform = "Google Ads"
	PlatformFacebook  Platform = "Facebook"
	PlatformInstagram Platform = "Instagram"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformTikTok    Platform = "TikTok"
	PlatformYouTube   Platform = "YouTube"
)

func Platforms() []Platform {
	return []Platform{
		PlatformGoogleAds, PlatformFacebook, PlatformInstagram,
		PlatformLinkedIn, PlatformTikTok, PlatformYouTube,
	}
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformGoogleAds, PlatformFacebook, PlatformInstagram,
		PlatformLinkedIn, PlatformTikTok, PlatformYouTube:
		return true
	}
	return false
}

type Status string

const (
	StatusActive    Status = "Active"
	StatusPaused    Status = "Paused"
	StatusCompleted Status = "Completed"
	StatusDraft     Status = "Draft"
)

func Statuses() []Status {
	return []Status{StatusActive, StatusPaused, StatusCompleted, StatusDraft}
}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusDraft:
		return true
	}
	return false
}

const dateLayout = "2006-01-02"

// Date is a calendar day. It marshals as YYYY-MM-DD.
type Date struct{ time.Time }

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// MustDate panics on a malformed date. Fixture use only.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == `""` || s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date: expected string, got %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// CampaignRecord is one marketing campaign as supplied by the upstream
// data source. StoredCTR/StoredCPC/StoredROAS are the source's own
// cached ratios; the CTR, CPC and ROAS methods recompute them from the
// raw counters and are authoritative everywhere in this module.
type CampaignRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"campaign"`
	Platform    Platform `json:"platform"`
	Status      Status   `json:"status"`
	Budget      float64  `json:"budget"`
	Spent       float64  `json:"spent"`
	Impressions int      `json:"impressions"`
	Clicks      int      `json:"clicks"`
	Conversions int      `json:"conversions"`
	Revenue     float64  `json:"revenue"`
	StoredCTR   float64  `json:"ctr"`
	StoredCPC   float64  `json:"cpc"`
	StoredROAS  float64  `json:"roas"`
	StartDate   Date     `json:"startDate"`
	EndDate     Date     `json:"endDate"`
}

// CTR is clicks/impressions as a percentage, 0 when there were no
// impressions.
func (c CampaignRecord) CTR() float64 {
	if c.Impressions <= 0 {
		return 0
	}
	return round2(float64(c.Clicks) / float64(c.Impressions) * 100)
}

// CPC is spend per click, 0 when there were no clicks.
func (c CampaignRecord) CPC() float64 {
	if c.Clicks <= 0 {
		return 0
	}
	return round2(c.Spent / float64(c.Clicks))
}

// ROAS is revenue per unit of spend, 0 when nothing was spent.
func (c CampaignRecord) ROAS() float64 {
	if c.Spent <= 0 {
		return 0
	}
	return round2(c.Revenue / c.Spent)
}

// BudgetUtilization is spend as a percentage of budget. Spend above
// budget is allowed upstream, so values over 100 are representable.
func (c CampaignRecord) BudgetUtilization() float64 {
	if c.Budget <= 0 {
		return 0
	}
	return round2(c.Spent / c.Budget * 100)
}

// ChartDataPoint is one day of the aggregate time series, ordered by
// date ascending with one point per calendar day.
type ChartDataPoint struct {
	Date        Date    `json:"date"`
	Revenue     int     `json:"revenue"`
	Users       int     `json:"users"`
	Conversions int     `json:"conversions"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	ROAS        float64 `json:"roas"`
}

// TrafficSource percentages across a full set should sum to ~100; the
// upstream source owns that invariant.
type TrafficSource struct {
	Source     string  `json:"source"`
	Visitors   int     `json:"visitors"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
)

type ValueFormat string

const (
	FormatAsCurrency   ValueFormat = "currency"
	FormatAsNumber     ValueFormat = "number"
	FormatAsPercentage ValueFormat = "percentage"
)

// MetricCard is a labeled KPI snapshot. Change is a signed percentage
// against the prior period.
type MetricCard struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Value      float64     `json:"value"`
	Change     float64     `json:"change"`
	ChangeType ChangeType  `json:"changeType"`
	Icon       string      `json:"icon"`
	Color      string      `json:"color"`
	Format     ValueFormat `json:"format"`
}

// FormattedValue renders the card value per its format hint.
func (m MetricCard) FormattedValue() string {
	switch m.Format {
	case FormatAsCurrency:
		return FormatCurrency(m.Value)
	case FormatAsPercentage:
		return FormatPercent(m.Value)
	default:
		return FormatNumber(m.Value)
	}
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }
