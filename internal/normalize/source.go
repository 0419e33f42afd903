package normalize

import (
	"strings"

	"github.com/gyeh/sitecards/internal/model"
)

var sourceRules = []rule[model.SourceKey]{
	{equals("self"), model.SourceSelf},
	{equals("community"), model.SourceCommunity},
	{isStreetTeam, model.SourceStreetTeams},
	{contains("police"), model.SourcePolice},
	{contains("ems"), model.SourceEMS},
	{contains("hospital", "ed"), model.SourceHospital},
	{contains("bhac"), model.SourceBHAC},
}

func isStreetTeam(v string) bool {
	return v == "streetteams" || (strings.Contains(v, "street") && strings.Contains(v, "team"))
}

// ClassifySource maps one accepted-from entry onto the source vocabulary.
// ok is false when the entry matches no tracked source.
func ClassifySource(entry string) (key model.SourceKey, ok bool) {
	key = firstMatch(entry, sourceRules, model.SourceKey(""))
	return key, key != ""
}

// SourceIcon returns the icon for one accepted-from entry, falling back to the
// generic "added" icon.
func SourceIcon(entry string) string {
	key, ok := ClassifySource(entry)
	if !ok {
		return model.IconAddedSource
	}
	src, _ := model.SourceByKey(key)
	return src.Icon
}

// Accepted evaluates the accepted-from list and the checkmark columns of a
// row against the tracked sources.
func Accepted(row *model.SiteRow) model.AcceptedSet {
	entries := SplitPipeList(row.AcceptedFrom)
	set := model.AcceptedSet{
		Entries: entries,
		Icons:   make([]string, 0, len(entries)),
		Other:   []string{},
	}

	found := make(map[model.SourceKey]bool, len(model.AllSources))
	for _, e := range entries {
		key, ok := ClassifySource(e)
		if !ok {
			set.Icons = append(set.Icons, model.IconAddedSource)
			set.Other = append(set.Other, e)
			continue
		}
		src, _ := model.SourceByKey(key)
		set.Icons = append(set.Icons, src.Icon)
		found[key] = true
	}

	set.Marks = make([]model.SourceMark, len(model.AllSources))
	for i, src := range model.AllSources {
		present := found[src.Key]
		if f := row.Field(src.MarkColumn); f != nil && InterpretYesMark(*f) {
			present = true
		}
		set.Marks[i] = model.SourceMark{Source: src, Present: present}
	}
	return set
}
