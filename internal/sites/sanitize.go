package sites

import (
	"strings"

	"github.com/gyeh/sitecards/internal/model"
)

// Sanitize copies rows that carry a nickname or official name, preserving
// order. Rows identified only by id are dropped. The dropped count is returned
// so callers can report it.
func Sanitize(rows []model.SiteRow) (kept []model.SiteRow, dropped int) {
	kept = make([]model.SiteRow, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r.Nickname) == "" && strings.TrimSpace(r.OfficialName) == "" {
			dropped++
			continue
		}
		kept = append(kept, r)
	}
	return kept, dropped
}
