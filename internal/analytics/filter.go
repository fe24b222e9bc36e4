// Package analytics filters, summarizes, sorts and paginates campaign
// records. Every function is a pure computation over its inputs.
package analytics

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ADML003/analytics-dashboard/internal/models"
)

// Filter is an ephemeral query over campaign records. The zero value
// matches everything: empty enums and zero dates mean "no constraint",
// nil bounds mean the side is open.
type Filter struct {
	Platform models.Platform
	Status   models.Status

	// Containment semantics: a campaign matches only when its whole
	// span lies inside the range, not when it merely overlaps it.
	StartDate models.Date
	EndDate   models.Date

	MinBudget *float64
	MaxBudget *float64
	MinROAS   *float64
	MaxROAS   *float64
}

// FilterCampaigns applies the filter predicates conjunctively, in a
// fixed order, short-circuiting per record. Input order is preserved
// and an empty result is a valid outcome, not an error.
func FilterCampaigns(records []models.CampaignRecord, f Filter) []models.CampaignRecord {
	out := make([]models.CampaignRecord, 0, len(records))
	for _, c := range records {
		if !matches(c, f) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(c models.CampaignRecord, f Filter) bool {
	if f.Platform != "" && c.Platform != f.Platform {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if !f.StartDate.IsZero() && c.StartDate.Before(f.StartDate.Time) {
		return false
	}
	if !f.EndDate.IsZero() && c.EndDate.After(f.EndDate.Time) {
		return false
	}
	if f.MinBudget != nil && c.Budget < *f.MinBudget {
		return false
	}
	if f.MaxBudget != nil && c.Budget > *f.MaxBudget {
		return false
	}
	if f.MinROAS != nil && c.ROAS() < *f.MinROAS {
		return false
	}
	if f.MaxROAS != nil && c.ROAS() > *f.MaxROAS {
		return false
	}
	return true
}

// FilterInput carries raw filter fields as entered by the user.
type FilterInput struct {
	Platform  string
	Status    string
	StartDate string
	EndDate   string
	MinBudget string
	MaxBudget string
	MinROAS   string
	MaxROAS   string
}

// ParseFilter builds a Filter from raw input. Malformed fields are
// dropped with a warning and never fail the filter pass: a bound the
// user could not express is simply no constraint.
func ParseFilter(log *slog.Logger, in FilterInput) Filter {
	var f Filter

	if p := models.Platform(strings.TrimSpace(in.Platform)); p != "" && !strings.EqualFold(string(p), "all") {
		if p.Valid() {
			f.Platform = p
		} else {
			log.Warn("ignoring unknown platform filter", slog.String("platform", in.Platform))
		}
	}
	if s := models.Status(strings.TrimSpace(in.Status)); s != "" && !strings.EqualFold(string(s), "all") {
		if s.Valid() {
			f.Status = s
		} else {
			log.Warn("ignoring unknown status filter", slog.String("status", in.Status))
		}
	}
	f.StartDate = parseDate(log, "start date", in.StartDate)
	f.EndDate = parseDate(log, "end date", in.EndDate)
	f.MinBudget = parseBound(log, "min budget", in.MinBudget)
	f.MaxBudget = parseBound(log, "max budget", in.MaxBudget)
	f.MinROAS = parseBound(log, "min roas", in.MinROAS)
	f.MaxROAS = parseBound(log, "max roas", in.MaxROAS)
	return f
}

func parseDate(log *slog.Logger, field, raw string) models.Date {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.Date{}
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		log.Warn("ignoring invalid date filter", slog.String("field", field), slog.String("value", raw))
		return models.Date{}
	}
	return d
}

func parseBound(log *slog.Logger, field, raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Warn("ignoring non-numeric filter bound", slog.String("field", field), slog.String("value", raw))
		return nil
	}
	return &v
}
