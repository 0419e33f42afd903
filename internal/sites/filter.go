package sites

import (
	"strings"

	"github.com/gyeh/sitecards/internal/model"
)

// Filter keeps rows whose searchable text contains q, ignoring case. An empty
// query returns rows unchanged.
func Filter(rows []model.SiteRow, q string) []model.SiteRow {
	if q == "" {
		return rows
	}
	needle := strings.ToLower(q)
	out := make([]model.SiteRow, 0, len(rows))
	for i := range rows {
		if strings.Contains(haystack(&rows[i]), needle) {
			out = append(out, rows[i])
		}
	}
	return out
}

func haystack(r *model.SiteRow) string {
	return strings.ToLower(strings.Join([]string{
		r.Nickname,
		r.OfficialName,
		r.ServiceCategory,
		r.ServicePopulation,
		r.EligibilitySummary,
		r.Neighborhood,
		r.ServiceRegion,
	}, " "))
}
