package normalize

import (
	"strings"

	"github.com/gyeh/sitecards/internal/model"
)

const iconSchedule = "schedule"

var stayRules = []rule[string]{
	{contains("<24"), "wb_sunny"},
	{contains(">24"), "nights_stay"},
}

// LengthOfStay labels the length-of-stay column and picks a day/overnight icon.
func LengthOfStay(los string) model.Labeled {
	if blank(los) {
		return model.Labeled{Label: "-", Icon: iconSchedule}
	}
	return model.Labeled{Label: los, Icon: firstMatch(los, stayRules, iconSchedule)}
}

// CapacityConstrained reports whether the capacity constraints column is
// exactly "yes" (any case). Other affirmatives are not treated as a warning.
func CapacityConstrained(v string) bool {
	return strings.EqualFold(v, "yes")
}
