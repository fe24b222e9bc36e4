// Package source abstracts where the dashboard datasets come from. The
// core only requires type conformance, not a particular origin.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ADML003/analytics-dashboard/internal/fixtures"
	"github.com/ADML003/analytics-dashboard/internal/models"
)

// Dataset bundles the four collections a dashboard session works over.
type Dataset struct {
	Campaigns      []models.CampaignRecord `json:"campaigns"`
	ChartData      []models.ChartDataPoint `json:"chartData"`
	Metrics        []models.MetricCard     `json:"metrics"`
	TrafficSources []models.TrafficSource  `json:"trafficSources"`
}

type Provider interface {
	Load(ctx context.Context) (Dataset, error)
}

// Fixtures serves the built-in mock dataset.
type Fixtures struct{}

func (Fixtures) Load(context.Context) (Dataset, error) {
	return Dataset{
		Campaigns:      fixtures.Campaigns(),
		ChartData:      fixtures.ChartData(),
		Metrics:        fixtures.Metrics(),
		TrafficSources: fixtures.TrafficSources(),
	}, nil
}

// File decodes a Dataset from a local JSON document. Collections the
// document omits stay empty; the session renders them as empty states.
type File struct {
	Path string
}

func (f File) Load(ctx context.Context) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	var ds Dataset
	if err := json.Unmarshal(b, &ds); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset %s: %w", f.Path, err)
	}
	return ds, nil
}
