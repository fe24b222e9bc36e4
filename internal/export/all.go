package export

import (
	"fmt"
	"time"

	"github.com/ADML003/analytics-dashboard/internal/analytics"
	"github.com/ADML003/analytics-dashboard/internal/models"
)

const csvMIME = "text/csv"

// Bundle is the whole dashboard state for the export-all workflow.
type Bundle struct {
	Metrics   []models.MetricCard
	Campaigns []models.CampaignRecord
	Chart     []models.ChartDataPoint
	Traffic   []models.TrafficSource
}

// AllCSV writes the four dashboard CSVs through the sink, pausing for
// stagger between files. The pause is a scheduling courtesy carried
// over from the browser workflow, not a correctness requirement; tests
// pass zero. Each save is atomic, so a mid-run failure aborts the
// remainder and leaves the already-written files intact.
func AllCSV(sink FileSink, b Bundle, now time.Time, stagger time.Duration) error {
	files := []struct {
		dataset string
		build   func() (string, error)
	}{
		{"metrics", func() (string, error) { return MetricsCSV(b.Metrics) }},
		{"campaign-data", func() (string, error) { return CampaignsCSV(b.Campaigns) }},
		{"analytics-data", func() (string, error) { return ChartCSV(b.Chart) }},
		{"traffic-sources", func() (string, error) { return TrafficCSV(b.Traffic) }},
	}
	for i, f := range files {
		if i > 0 && stagger > 0 {
			time.Sleep(stagger)
		}
		doc, err := f.build()
		if err != nil {
			return fmt.Errorf("export %s: %w", f.dataset, err)
		}
		if err := sink.Save([]byte(doc), Filename(f.dataset, now), csvMIME); err != nil {
			return fmt.Errorf("export %s: %w", f.dataset, err)
		}
	}
	return nil
}

// FilteredCSV writes the summary of a filtered campaign set followed by
// the matching campaign rows.
func FilteredCSV(sink FileSink, records []models.CampaignRecord, sum analytics.Summary, now time.Time, stagger time.Duration) error {
	doc, err := SummaryCSV(sum)
	if err != nil {
		return fmt.Errorf("export analytics-summary: %w", err)
	}
	if err := sink.Save([]byte(doc), Filename("analytics-summary", now), csvMIME); err != nil {
		return fmt.Errorf("export analytics-summary: %w", err)
	}
	if stagger > 0 {
		time.Sleep(stagger)
	}
	doc, err = CampaignsCSV(records)
	if err != nil {
		return fmt.Errorf("export campaign-data: %w", err)
	}
	if err := sink.Save([]byte(doc), Filename("campaign-data", now), csvMIME); err != nil {
		return fmt.Errorf("export campaign-data: %w", err)
	}
	return nil
}
