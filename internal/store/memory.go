// Package store owns the session-scoped dashboard state. All entities
// live here for the lifetime of a session; readers get snapshots so no
// caller can alias the guarded slices.
package store

import (
	"sync"

	"github.com/ADML003/analytics-dashboard/internal/models"
	"github.com/ADML003/analytics-dashboard/internal/source"
)

type SessionStore struct {
	mu sync.RWMutex
	ds source.Dataset
}

func NewSessionStore(ds source.Dataset) *SessionStore {
	return &SessionStore{ds: ds}
}

func (s *SessionStore) Campaigns() []models.CampaignRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CampaignRecord, len(s.ds.Campaigns))
	copy(out, s.ds.Campaigns)
	return out
}

func (s *SessionStore) ChartData() []models.ChartDataPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ChartDataPoint, len(s.ds.ChartData))
	copy(out, s.ds.ChartData)
	return out
}

func (s *SessionStore) Metrics() []models.MetricCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MetricCard, len(s.ds.Metrics))
	copy(out, s.ds.Metrics)
	return out
}

func (s *SessionStore) TrafficSources() []models.TrafficSource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TrafficSource, len(s.ds.TrafficSources))
	copy(out, s.ds.TrafficSources)
	return out
}

// QueryCampaigns returns the campaigns matching pred, in stored order.
// A nil pred matches everything.
func (s *SessionStore) QueryCampaigns(pred func(models.CampaignRecord) bool) []models.CampaignRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CampaignRecord
	for _, c := range s.ds.Campaigns {
		if pred == nil || pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// UpdateChart replaces the chart series with fn's result, under the
// write lock. The real-time simulation helper plugs in here.
func (s *SessionStore) UpdateChart(fn func([]models.ChartDataPoint) []models.ChartDataPoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ds.ChartData = fn(s.ds.ChartData)
}
