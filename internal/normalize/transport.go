package normalize

import (
	"strings"

	"github.com/gyeh/sitecards/internal/model"
)

// Each rule is evaluated once, so "ambulance or ems" yields a single EMS mode,
// while taxi and ride-share stay separate modes even though they share an icon.
var transportRules = []rule[model.TransportMode]{
	{contains("ambulance", "ems"), model.ModeEMS},
	{contains("police"), model.ModePolice},
	{contains("taxi"), model.ModeTaxi},
	{contains("uber", "lyft"), model.ModeRide},
	{contains("van"), model.ModeVan},
}

var supportKeywords = []string{"support", "van", "voucher", "token", "transport"}

// TransportModes scans a transport column for known modes in fixed order.
func TransportModes(v string) model.Transport {
	return model.Transport{Modes: allMatches(v, transportRules)}
}

// HasTransportSupport reports whether the transport support column describes
// real support. Any "no"/"none" wins over a support keyword in the same text.
func HasTransportSupport(v string) bool {
	s := strings.ToLower(v)
	if s == "" {
		return false
	}
	if strings.Contains(s, "no") || strings.Contains(s, "none") {
		return false
	}
	return contains(supportKeywords...)(s)
}
