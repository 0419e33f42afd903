package model

// SourceKey identifies one referral origin in the accepted-from vocabulary.
type SourceKey string

const (
	SourceSelf        SourceKey = "self"
	SourceCommunity   SourceKey = "community"
	SourceStreetTeams SourceKey = "street-teams"
	SourcePolice      SourceKey = "police"
	SourceEMS         SourceKey = "ems"
	SourceHospital    SourceKey = "hospital"
	SourceBHAC        SourceKey = "bhac"
)

// Source describes one tracked referral origin.
type Source struct {
	Key        SourceKey
	Label      string // display label, e.g. "Street teams"
	Icon       string // material symbol name
	MarkColumn string // optional checkmark column, e.g. "acceptsPolice"
}

// IconAddedSource is shown for accepted-from entries outside the vocabulary.
const IconAddedSource = "group_add"

// AllSources lists the tracked referral origins in canonical display order.
var AllSources = []Source{
	{Key: SourceSelf, Label: "Self", Icon: "person", MarkColumn: "acceptsSelf"},
	{Key: SourceCommunity, Label: "Community", Icon: "groups", MarkColumn: "acceptsCommunity"},
	{Key: SourceStreetTeams, Label: "Street teams", Icon: "diversity_3", MarkColumn: "acceptsStreetTeams"},
	{Key: SourcePolice, Label: "Police", Icon: "local_police", MarkColumn: "acceptsPolice"},
	{Key: SourceEMS, Label: "EMS", Icon: "emergency", MarkColumn: "acceptsEms"},
	{Key: SourceHospital, Label: "Hospital/ED", Icon: "local_hospital", MarkColumn: "acceptsHospital"},
	{Key: SourceBHAC, Label: "BHAC-authorized", Icon: "badge", MarkColumn: "acceptsBhac"},
}

// SourceByKey returns the Source for the given key, or ok=false.
func SourceByKey(key SourceKey) (Source, bool) {
	for _, s := range AllSources {
		if s.Key == key {
			return s, true
		}
	}
	return Source{}, false
}
