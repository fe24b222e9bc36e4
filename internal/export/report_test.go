package export_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/ADML003/analytics-dashboard/internal/export"
	"github.com/ADML003/analytics-dashboard/internal/fixtures"
	"github.com/ADML003/analytics-dashboard/internal/models"
)

func TestReportFilename(t *testing.T) {
	ts := time.Date(2024, 8, 27, 0, 0, 0, 0, time.UTC)
	if got := export.ReportFilename(ts); got != "marketing-dashboard-report-2024-08-27.pdf" {
		t.Fatalf("got %q", got)
	}
}

func pageCount(t *testing.T, pdf []byte) int {
	t.Helper()
	// each page object carries a /Type /Page marker on its own line; the
	// page tree root is /Type /Pages and never matches
	return bytes.Count(pdf, []byte("/Type /Page\n"))
}

func TestReportRenders(t *testing.T) {
	data := export.ReportData{
		Metrics:   fixtures.Metrics(),
		Campaigns: fixtures.Campaigns(),
		Traffic:   fixtures.TrafficSources(),
	}
	pdf, err := export.Report("Marketing Analytics Dashboard Report", time.Date(2024, 8, 27, 0, 0, 0, 0, time.UTC), data)
	if err != nil {
		t.Fatalf("render report: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatalf("output is not a pdf document")
	}
	if len(pdf) < 2000 {
		t.Fatalf("report suspiciously small: %d bytes", len(pdf))
	}
}

func TestReportPaginatesLargeCampaignTable(t *testing.T) {
	small := export.ReportData{
		Metrics: fixtures.Metrics(),
		Traffic: fixtures.TrafficSources(),
	}
	large := small
	large.Campaigns = fixtures.RandomCampaigns(rand.New(rand.NewSource(3)), 200)

	smallPDF, err := export.Report("Report", time.Now(), small)
	if err != nil {
		t.Fatalf("render small report: %v", err)
	}
	largePDF, err := export.Report("Report", time.Now(), large)
	if err != nil {
		t.Fatalf("render large report: %v", err)
	}

	sp, lp := pageCount(t, smallPDF), pageCount(t, largePDF)
	if lp <= sp {
		t.Fatalf("200 campaign rows should spill onto more pages: %d vs %d", sp, lp)
	}
	if lp < 3 {
		t.Fatalf("expected at least 3 pages for 200 rows, got %d", lp)
	}
}

func TestReportTruncatesAccentedNames(t *testing.T) {
	long := strings.Repeat("Campaña de Verano Été ", 6)
	data := export.ReportData{
		Campaigns: []models.CampaignRecord{{
			Name: long, Platform: models.PlatformFacebook, Status: models.StatusActive,
			Budget: 1000, Spent: 500, Revenue: 1200,
			StartDate: models.MustDate("2024-06-01"), EndDate: models.MustDate("2024-06-30"),
		}},
	}
	pdf, err := export.Report("Report", time.Now(), data)
	if err != nil {
		t.Fatalf("render report: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatalf("output is not a pdf document")
	}
}

func TestReportEmptySections(t *testing.T) {
	pdf, err := export.Report("Report", time.Now(), export.ReportData{})
	if err != nil {
		t.Fatalf("render empty report: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatalf("output is not a pdf document")
	}
	if got := pageCount(t, pdf); got != 1 {
		t.Fatalf("empty report should fit one page, got %d", got)
	}
}
