package analytics

import (
	"sort"
	"strings"

	"github.com/ADML003/analytics-dashboard/internal/models"
)

// SortKey names a sortable campaign table column.
type SortKey string

const (
	SortByName        SortKey = "campaign"
	SortByPlatform    SortKey = "platform"
	SortByStatus      SortKey = "status"
	SortByBudget      SortKey = "budget"
	SortBySpent       SortKey = "spent"
	SortByRevenue     SortKey = "revenue"
	SortByConversions SortKey = "conversions"
	SortByCTR         SortKey = "ctr"
	SortByROAS        SortKey = "roas"
	SortByStartDate   SortKey = "start"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByPlatform, SortByStatus, SortByBudget, SortBySpent,
		SortByRevenue, SortByConversions, SortByCTR, SortByROAS, SortByStartDate:
		return true
	}
	return false
}

// SortCampaigns returns a copy of records stably sorted by key. An
// unknown key leaves the input order untouched.
func SortCampaigns(records []models.CampaignRecord, key SortKey, desc bool) []models.CampaignRecord {
	out := make([]models.CampaignRecord, len(records))
	copy(out, records)
	if !key.Valid() {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return lessBy(key, out[j], out[i])
		}
		return lessBy(key, out[i], out[j])
	})
	return out
}

func lessBy(key SortKey, a, b models.CampaignRecord) bool {
	switch key {
	case SortByName:
		return norm(a.Name) < norm(b.Name)
	case SortByPlatform:
		return a.Platform < b.Platform
	case SortByStatus:
		return a.Status < b.Status
	case SortByBudget:
		return a.Budget < b.Budget
	case SortBySpent:
		return a.Spent < b.Spent
	case SortByRevenue:
		return a.Revenue < b.Revenue
	case SortByConversions:
		return a.Conversions < b.Conversions
	case SortByCTR:
		return a.CTR() < b.CTR()
	case SortByROAS:
		return a.ROAS() < b.ROAS()
	case SortByStartDate:
		return a.StartDate.Before(b.StartDate.Time)
	}
	return false
}

// SearchCampaigns keeps records whose name, platform or status contains
// the query, case-insensitively. An empty query matches everything.
func SearchCampaigns(records []models.CampaignRecord, query string) []models.CampaignRecord {
	q := norm(query)
	if q == "" {
		return records
	}
	out := make([]models.CampaignRecord, 0, len(records))
	for _, c := range records {
		if strings.Contains(norm(c.Name), q) ||
			strings.Contains(norm(string(c.Platform)), q) ||
			strings.Contains(norm(string(c.Status)), q) {
			out = append(out, c)
		}
	}
	return out
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
