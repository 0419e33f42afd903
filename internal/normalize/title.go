package normalize

import (
	"net/url"
	"strings"

	"github.com/gyeh/sitecards/internal/model"
)

const (
	unknownTitle = "Unknown"
	partSep      = " • "
	mapsBaseURL  = "https://maps.google.com/?q="
)

// DisplayTitle returns the first non-blank of nickname, official name and id,
// or "Unknown".
func DisplayTitle(row *model.SiteRow) string {
	for _, v := range []string{row.Nickname, row.OfficialName, row.ID} {
		if !blank(v) {
			return v
		}
	}
	return unknownTitle
}

// Subtitle joins the service category and population, skipping empty parts.
func Subtitle(row *model.SiteRow) string {
	return joinNonEmpty(row.ServiceCategory, row.ServicePopulation)
}

// Location joins neighborhood and service region, skipping empty parts.
func Location(row *model.SiteRow) string {
	return joinNonEmpty(row.Neighborhood, row.ServiceRegion)
}

// Hours prefers intake hours over operating hours.
func Hours(row *model.SiteRow) string {
	switch {
	case row.HoursIntake != "":
		return row.HoursIntake
	case row.HoursOperation != "":
		return row.HoursOperation
	}
	return "-"
}

// MapURL builds a maps search link for the program address, or "" when the
// address is empty.
func MapURL(address string) string {
	if blank(address) {
		return ""
	}
	return mapsBaseURL + url.QueryEscape(address)
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, partSep)
}
